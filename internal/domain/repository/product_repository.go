package repository

import "github.com/tu-usuario/catalog-api/internal/domain/entity"

// ProductFilter filtros opcionales e independientes del listado de productos.
// Name es substring case-insensitive; CategoryID es igualdad exacta.
// Vacío significa sin filtro.
type ProductFilter struct {
	Name       string
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos de lectura llenan CategoryName y SkuCount desde el join.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ListFiltered(filter ProductFilter) ([]*entity.Product, error)
	CountFiltered(filter ProductFilter) (int64, error)
	ExistsByNameAndCategory(name, categoryID string) (bool, error)
	ExistsByNameAndCategoryExcluding(name, categoryID, excludeID string) (bool, error)
	CountByCategory(categoryID string) (int64, error)
	CountGroupedByCategory() (map[string]int64, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
