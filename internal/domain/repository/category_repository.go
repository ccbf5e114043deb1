package repository

import "github.com/tu-usuario/catalog-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID devuelve (nil, nil) si no existe; el usecase decide el error.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	ExistsByName(name string) (bool, error)
	ExistsByNameExcluding(name, excludeID string) (bool, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
