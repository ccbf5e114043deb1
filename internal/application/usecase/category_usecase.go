package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalog-api/internal/application/dto"
	"github.com/tu-usuario/catalog-api/internal/domain"
	"github.com/tu-usuario/catalog-api/internal/domain/entity"
	"github.com/tu-usuario/catalog-api/internal/domain/repository"
	"github.com/tu-usuario/catalog-api/pkg/logger"
)

// CategoryUseCase casos de uso CRUD para categorías. El conteo de productos
// asociados siempre sale de una consulta explícita sobre el repo de productos,
// nunca de una colección cargada.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products, log: log}
}

// List devuelve todas las categorías con su productCount derivado al leer.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	counts, err := uc.products.CountGroupedByCategory()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		c.ProductCount = counts[c.ID]
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.ResolveOrFail(id)
	if err != nil {
		return nil, err
	}
	count, err := uc.products.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	category.ProductCount = count
	out := toCategoryResponse(category)
	return &out, nil
}

// Create crea una nueva categoría. Name es único global (case-sensitive).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	uc.log.Info().Str("name", in.Name).Msg("creando categoría")

	exists, err := uc.categories.ExistsByName(in.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("Category", "name", in.Name)
	}

	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}

	uc.log.Info().Str("id", category.ID).Msg("categoría creada")
	out := toCategoryResponse(category)
	return &out, nil
}

// Update actualiza parcialmente una categoría: solo los campos presentes
// cambian. Si llega un nombre distinto al actual, se re-verifica la unicidad
// excluyendo la propia categoría.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	uc.log.Info().Str("id", id).Msg("actualizando categoría")

	category, err := uc.ResolveOrFail(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != category.Name {
		exists, err := uc.categories.ExistsByNameExcluding(*in.Name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDuplicate("Category", "name", *in.Name)
		}
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()

	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}

	count, err := uc.products.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	category.ProductCount = count
	out := toCategoryResponse(category)
	return &out, nil
}

// Delete elimina una categoría. Se rechaza mientras existan productos
// asociados; la eliminación nunca cascadea sobre productos.
func (uc *CategoryUseCase) Delete(id string) error {
	uc.log.Info().Str("id", id).Msg("eliminando categoría")

	category, err := uc.ResolveOrFail(id)
	if err != nil {
		return err
	}

	count, err := uc.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewInvalidOperation(
			"Cannot delete category '%s' as it has %d associated products", category.Name, count)
	}

	return uc.categories.Delete(id)
}

// ResolveOrFail busca la categoría o devuelve NotFound. Lo usa también
// ProductUseCase para validar referencias; el error viaja sin re-envolver.
func (uc *CategoryUseCase) ResolveOrFail(id string) (*entity.Category, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFound("Category", "id", id)
	}
	return category, nil
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: c.ProductCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
