package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalog-api/internal/application/dto"
	"github.com/tu-usuario/catalog-api/internal/domain"
	"github.com/tu-usuario/catalog-api/internal/domain/entity"
	"github.com/tu-usuario/catalog-api/internal/domain/repository"
	"github.com/tu-usuario/catalog-api/pkg/logger"
)

// Paginación de listados: página en base cero.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// TxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository, skus repository.SkuRepository) error) error
}

// ProductUseCase casos de uso CRUD para productos. Valida referencias de
// categoría a través de CategoryUseCase; el NotFound de categoría viaja
// intacto hasta el borde HTTP.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories *CategoryUseCase
	tx         TxRunner
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories *CategoryUseCase, tx TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, tx: tx, log: log}
}

// List lista productos con filtros opcionales e independientes: substring
// de nombre (case-insensitive) y categoría exacta. Orden: creación
// descendente. Devuelve el sobre de página con índice en base cero.
func (uc *ProductUseCase) List(q dto.ListProductsQuery) (*dto.ProductPage, error) {
	page := q.Page
	if page < 0 {
		page = 0
	}
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := repository.ProductFilter{
		Name:       q.Name,
		CategoryID: q.CategoryID,
		Limit:      pageSize,
		Offset:     page * pageSize,
	}
	total, err := uc.products.CountFiltered(filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.ListFiltered(filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &dto.ProductPage{
		Content:       items,
		Page:          page,
		PageSize:      pageSize,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page+1 >= totalPages,
	}, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.ResolveOrFail(id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Create crea un producto bajo una categoría existente. (Name, CategoryID)
// es único: el mismo nombre puede existir en dos categorías distintas pero
// no dos veces en la misma.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	uc.log.Info().Str("name", in.Name).Str("categoryId", in.CategoryID).Msg("creando producto")

	category, err := uc.categories.ResolveOrFail(in.CategoryID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.products.ExistsByNameAndCategory(in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicateMsg(
			"Product with name '%s' already exists in category '%s'", in.Name, category.Name)
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		BasePrice:    in.BasePrice,
		Brand:        in.Brand,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		SkuCount:     0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}

	uc.log.Info().Str("id", product.ID).Msg("producto creado")
	out := toProductResponse(product)
	return &out, nil
}

// Update actualiza parcialmente un producto. Si llega categoryId se resuelve
// y reasigna la categoría; si llega un nombre distinto al actual, la unicidad
// se re-verifica contra la categoría efectiva (la recién asignada si vino en
// la petición, si no la actual) excluyendo el propio producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	uc.log.Info().Str("id", id).Msg("actualizando producto")

	product, err := uc.ResolveOrFail(id)
	if err != nil {
		return nil, err
	}

	if in.CategoryID != nil {
		category, err := uc.categories.ResolveOrFail(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}

	if in.Name != nil && *in.Name != product.Name {
		// product.CategoryID ya es la categoría efectiva en este punto.
		exists, err := uc.products.ExistsByNameAndCategoryExcluding(*in.Name, product.CategoryID, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDuplicateMsg(
				"Product with name '%s' already exists in the category", *in.Name)
		}
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.BasePrice != nil {
		product.BasePrice = *in.BasePrice
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	product.UpdatedAt = time.Now()

	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	out := toProductResponse(product)
	return &out, nil
}

// Delete elimina un producto y, por propiedad del ciclo de vida, todos sus
// SKUs, dentro de una misma transacción.
func (uc *ProductUseCase) Delete(id string) error {
	uc.log.Info().Str("id", id).Msg("eliminando producto")

	if _, err := uc.ResolveOrFail(id); err != nil {
		return err
	}

	return uc.tx.Run(context.Background(), func(products repository.ProductRepository, skus repository.SkuRepository) error {
		if err := skus.DeleteByProduct(id); err != nil {
			return err
		}
		return products.Delete(id)
	})
}

// ResolveOrFail busca el producto o devuelve NotFound. Lo usa también
// SkuUseCase para validar referencias; el error viaja sin re-envolver.
func (uc *ProductUseCase) ResolveOrFail(id string) (*entity.Product, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewNotFound("Product", "id", id)
	}
	return product, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		BasePrice:    p.BasePrice,
		Brand:        p.Brand,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		SkuCount:     p.SkuCount,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
