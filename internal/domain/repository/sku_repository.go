package repository

import "github.com/tu-usuario/catalog-api/internal/domain/entity"

// SkuRepository define el puerto de persistencia para Sku (DIP).
// GetByIDAndProduct restringe la búsqueda al producto dueño: devuelve
// (nil, nil) también cuando el SKU existe pero pertenece a otro producto.
type SkuRepository interface {
	Create(sku *entity.Sku) error
	GetByIDAndProduct(id, productID string) (*entity.Sku, error)
	ListByProduct(productID string) ([]*entity.Sku, error)
	ExistsByCode(skuCode string) (bool, error)
	ExistsByCodeExcluding(skuCode, excludeID string) (bool, error)
	CountByProduct(productID string) (int64, error)
	Update(sku *entity.Sku) error
	Delete(id string) error
	DeleteByProduct(productID string) error
}
