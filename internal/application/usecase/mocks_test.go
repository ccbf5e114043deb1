package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tu-usuario/catalog-api/internal/domain/entity"
	"github.com/tu-usuario/catalog-api/internal/domain/repository"
	"github.com/tu-usuario/catalog-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de repositorios para los tests de usecases (testify/mock).
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// MockCategoryRepository implementa repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(category *entity.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) GetByID(id string) (*entity.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) List() ([]*entity.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByNameExcluding(name, excludeID string) (bool, error) {
	args := m.Called(name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Update(category *entity.Category) error {
	return m.Called(category).Error(0)
}

func (m *MockCategoryRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

// MockProductRepository implementa repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *entity.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) ListFiltered(filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) CountFiltered(filter repository.ProductFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) ExistsByNameAndCategory(name, categoryID string) (bool, error) {
	args := m.Called(name, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) ExistsByNameAndCategoryExcluding(name, categoryID, excludeID string) (bool, error) {
	args := m.Called(name, categoryID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CountByCategory(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountGroupedByCategory() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockProductRepository) Update(product *entity.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

// MockSkuRepository implementa repository.SkuRepository.
type MockSkuRepository struct {
	mock.Mock
}

func (m *MockSkuRepository) Create(sku *entity.Sku) error {
	return m.Called(sku).Error(0)
}

func (m *MockSkuRepository) GetByIDAndProduct(id, productID string) (*entity.Sku, error) {
	args := m.Called(id, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Sku), args.Error(1)
}

func (m *MockSkuRepository) ListByProduct(productID string) ([]*entity.Sku, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Sku), args.Error(1)
}

func (m *MockSkuRepository) ExistsByCode(skuCode string) (bool, error) {
	args := m.Called(skuCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkuRepository) ExistsByCodeExcluding(skuCode, excludeID string) (bool, error) {
	args := m.Called(skuCode, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSkuRepository) CountByProduct(productID string) (int64, error) {
	args := m.Called(productID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSkuRepository) Update(sku *entity.Sku) error {
	return m.Called(sku).Error(0)
}

func (m *MockSkuRepository) Delete(id string) error {
	return m.Called(id).Error(0)
}

func (m *MockSkuRepository) DeleteByProduct(productID string) error {
	return m.Called(productID).Error(0)
}

// fakeTxRunner ejecuta el callback directamente con los repos dados,
// sin transacción real.
type fakeTxRunner struct {
	products repository.ProductRepository
	skus     repository.SkuRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SkuRepository) error) error {
	return fn(f.products, f.skus)
}
