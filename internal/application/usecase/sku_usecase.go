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

// SkuUseCase casos de uso CRUD para SKUs. Toda operación resuelve primero el
// producto dueño vía ProductUseCase; el NotFound de producto viaja intacto.
// La unicidad de SkuCode es global, no por producto.
type SkuUseCase struct {
	skus     repository.SkuRepository
	products *ProductUseCase
	log      *logger.Logger
}

// NewSkuUseCase construye el caso de uso.
func NewSkuUseCase(skus repository.SkuRepository, products *ProductUseCase, log *logger.Logger) *SkuUseCase {
	return &SkuUseCase{skus: skus, products: products, log: log}
}

// ListByProduct devuelve todos los SKUs del producto indicado.
func (uc *SkuUseCase) ListByProduct(productID string) ([]dto.SkuResponse, error) {
	if _, err := uc.products.ResolveOrFail(productID); err != nil {
		return nil, err
	}
	list, err := uc.skus.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SkuResponse, 0, len(list))
	for _, s := range list {
		items = append(items, toSkuResponse(s))
	}
	return items, nil
}

// GetByID obtiene un SKU restringido a su producto dueño: falla con NotFound
// si el SKU no existe o pertenece a otro producto.
func (uc *SkuUseCase) GetByID(productID, skuID string) (*dto.SkuResponse, error) {
	if _, err := uc.products.ResolveOrFail(productID); err != nil {
		return nil, err
	}
	sku, err := uc.resolveScoped(skuID, productID)
	if err != nil {
		return nil, err
	}
	out := toSkuResponse(sku)
	return &out, nil
}

// Create crea un SKU bajo un producto existente. SkuCode no puede existir
// en ningún otro SKU del sistema. Quantity omitido inicia en 0.
func (uc *SkuUseCase) Create(productID string, in dto.CreateSkuRequest) (*dto.SkuResponse, error) {
	uc.log.Info().Str("skuCode", in.SkuCode).Str("productId", productID).Msg("creando SKU")

	product, err := uc.products.ResolveOrFail(productID)
	if err != nil {
		return nil, err
	}

	exists, err := uc.skus.ExistsByCode(in.SkuCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewDuplicate("SKU", "skuCode", in.SkuCode)
	}

	quantity := 0
	if in.Quantity != nil {
		quantity = *in.Quantity
	}
	now := time.Now()
	sku := &entity.Sku{
		ID:          uuid.New().String(),
		SkuCode:     in.SkuCode,
		Name:        in.Name,
		Attributes:  in.Attributes,
		Price:       in.Price,
		Quantity:    quantity,
		ProductID:   product.ID,
		ProductName: product.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.skus.Create(sku); err != nil {
		return nil, err
	}

	uc.log.Info().Str("id", sku.ID).Msg("SKU creado")
	out := toSkuResponse(sku)
	return &out, nil
}

// Update actualiza parcialmente un SKU restringido a su producto. Si llega
// un skuCode distinto al actual se re-verifica la unicidad global excluyendo
// el propio SKU.
func (uc *SkuUseCase) Update(productID, skuID string, in dto.UpdateSkuRequest) (*dto.SkuResponse, error) {
	uc.log.Info().Str("id", skuID).Str("productId", productID).Msg("actualizando SKU")

	if _, err := uc.products.ResolveOrFail(productID); err != nil {
		return nil, err
	}
	sku, err := uc.resolveScoped(skuID, productID)
	if err != nil {
		return nil, err
	}

	if in.SkuCode != nil && *in.SkuCode != sku.SkuCode {
		exists, err := uc.skus.ExistsByCodeExcluding(*in.SkuCode, skuID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.NewDuplicate("SKU", "skuCode", *in.SkuCode)
		}
	}

	if in.SkuCode != nil {
		sku.SkuCode = *in.SkuCode
	}
	if in.Name != nil {
		sku.Name = *in.Name
	}
	if in.Attributes != nil {
		sku.Attributes = *in.Attributes
	}
	if in.Price != nil {
		sku.Price = *in.Price
	}
	if in.Quantity != nil {
		sku.Quantity = *in.Quantity
	}
	sku.UpdatedAt = time.Now()

	if err := uc.skus.Update(sku); err != nil {
		return nil, err
	}
	out := toSkuResponse(sku)
	return &out, nil
}

// Delete elimina un SKU restringido a su producto.
func (uc *SkuUseCase) Delete(productID, skuID string) error {
	uc.log.Info().Str("id", skuID).Str("productId", productID).Msg("eliminando SKU")

	if _, err := uc.products.ResolveOrFail(productID); err != nil {
		return err
	}
	sku, err := uc.resolveScoped(skuID, productID)
	if err != nil {
		return err
	}
	return uc.skus.Delete(sku.ID)
}

func (uc *SkuUseCase) resolveScoped(skuID, productID string) (*entity.Sku, error) {
	sku, err := uc.skus.GetByIDAndProduct(skuID, productID)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NewNotFoundMsg("SKU not found with id: %s for product id: %s", skuID, productID)
	}
	return sku, nil
}

func toSkuResponse(s *entity.Sku) dto.SkuResponse {
	return dto.SkuResponse{
		ID:          s.ID,
		SkuCode:     s.SkuCode,
		Name:        s.Name,
		Attributes:  s.Attributes,
		Price:       s.Price,
		Quantity:    s.Quantity,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
