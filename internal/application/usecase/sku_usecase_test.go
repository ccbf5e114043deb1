package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/catalog-api/internal/application/dto"
	"github.com/tu-usuario/catalog-api/internal/application/usecase"
	"github.com/tu-usuario/catalog-api/internal/domain"
	"github.com/tu-usuario/catalog-api/internal/domain/entity"
)

type skuFixture struct {
	products *MockProductRepository
	skus     *MockSkuRepository
	uc       *usecase.SkuUseCase
}

func newSkuFixture() *skuFixture {
	categories := new(MockCategoryRepository)
	products := new(MockProductRepository)
	skus := new(MockSkuRepository)
	categoryUC := usecase.NewCategoryUseCase(categories, products, testLogger())
	tx := &fakeTxRunner{products: products, skus: skus}
	productUC := usecase.NewProductUseCase(products, categoryUC, tx, testLogger())
	return &skuFixture{
		products: products,
		skus:     skus,
		uc:       usecase.NewSkuUseCase(skus, productUC, testLogger()),
	}
}

func blackSku() *entity.Sku {
	now := time.Now()
	return &entity.Sku{
		ID:          "sku-1",
		SkuCode:     "PHN-BLK-128",
		Name:        "Phone Black 128GB",
		Attributes:  `{"color":"black"}`,
		Price:       decimal.NewFromFloat(549.99),
		Quantity:    5,
		ProductID:   "prod-1",
		ProductName: "Phone",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Toda operación resuelve primero el producto dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestSkuList_ProductoNoExiste(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "missing").Return(nil, nil).Once()

	_, err := f.uc.ListByProduct("missing")
	require.Error(t, err)

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Product", nf.Resource)
	f.skus.AssertNotCalled(t, "ListByProduct", mock.Anything)
}

func TestSkuList_OK(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("ListByProduct", "prod-1").Return([]*entity.Sku{blackSku()}, nil).Once()

	out, err := f.uc.ListByProduct("prod-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "PHN-BLK-128", out[0].SkuCode)
	assert.Equal(t, "Phone", out[0].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID está acotado al producto: un SKU de otro producto es NotFound
// ──────────────────────────────────────────────────────────────────────────────

func TestSkuGetByID_DeOtroProductoEsNotFound(t *testing.T) {
	f := newSkuFixture()

	other := phoneProduct()
	other.ID = "prod-2"
	f.products.On("GetByID", "prod-2").Return(other, nil).Once()
	// El repo ya restringe por product_id: devuelve nil para un SKU ajeno.
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-2").Return(nil, nil).Once()

	_, err := f.uc.GetByID("prod-2", "sku-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "SKU not found with id: sku-1 for product id: prod-2")
}

func TestSkuGetByID_OK(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-1").Return(blackSku(), nil).Once()

	out, err := f.uc.GetByID("prod-1", "sku-1")
	require.NoError(t, err)
	assert.Equal(t, "sku-1", out.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: el código SKU es único en todo el sistema, no por producto
// ──────────────────────────────────────────────────────────────────────────────

func TestSkuCreate_OK_QuantityOmitidoEsCero(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("ExistsByCode", "PHN-RED-128").Return(false, nil).Once()
	f.skus.On("Create", mock.MatchedBy(func(s *entity.Sku) bool {
		return s.Quantity == 0 && s.ProductName == "Phone"
	})).Return(nil).Once()

	out, err := f.uc.Create("prod-1", dto.CreateSkuRequest{
		SkuCode: "PHN-RED-128",
		Name:    "Phone Red 128GB",
		Price:   decimal.NewFromFloat(549.99),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantity)
	assert.Equal(t, "Phone", out.ProductName)
	f.skus.AssertExpectations(t)
}

func TestSkuCreate_CodigoDuplicadoGlobal(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	// El código existe en otro producto; igualmente se rechaza.
	f.skus.On("ExistsByCode", "PHN-BLK-128").Return(true, nil).Once()

	_, err := f.uc.Create("prod-1", dto.CreateSkuRequest{
		SkuCode: "PHN-BLK-128",
		Name:    "Phone Black 128GB",
		Price:   decimal.NewFromFloat(549.99),
	})
	require.Error(t, err)

	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "SKU", dup.Resource)
	f.skus.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSkuCreate_ProductoNoExiste(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "missing").Return(nil, nil).Once()

	_, err := f.uc.Create("missing", dto.CreateSkuRequest{
		SkuCode: "PHN-BLK-128",
		Name:    "Phone Black 128GB",
		Price:   decimal.NewFromFloat(549.99),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.skus.AssertNotCalled(t, "ExistsByCode", mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: re-chequeo global solo cuando el código cambia
// ──────────────────────────────────────────────────────────────────────────────

func TestSkuUpdate_CodigoNuevoColisiona(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-1").Return(blackSku(), nil).Once()
	f.skus.On("ExistsByCodeExcluding", "PHN-RED-128", "sku-1").Return(true, nil).Once()

	code := "PHN-RED-128"
	_, err := f.uc.Update("prod-1", "sku-1", dto.UpdateSkuRequest{SkuCode: &code})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	f.skus.AssertNotCalled(t, "Update", mock.Anything)
}

func TestSkuUpdate_MismoCodigoNoRechequea(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-1").Return(blackSku(), nil).Once()
	f.skus.On("Update", mock.AnythingOfType("*entity.Sku")).Return(nil).Once()

	code := "PHN-BLK-128"
	quantity := 9
	out, err := f.uc.Update("prod-1", "sku-1", dto.UpdateSkuRequest{SkuCode: &code, Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 9, out.Quantity)
	f.skus.AssertNotCalled(t, "ExistsByCodeExcluding", mock.Anything, mock.Anything)
}

func TestSkuUpdate_CamposOmitidosNoCambian(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-1").Return(blackSku(), nil).Once()
	f.skus.On("Update", mock.MatchedBy(func(s *entity.Sku) bool {
		return s.SkuCode == "PHN-BLK-128" && s.Name == "Phone Black 256GB" && s.Quantity == 5
	})).Return(nil).Once()

	name := "Phone Black 256GB"
	out, err := f.uc.Update("prod-1", "sku-1", dto.UpdateSkuRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "PHN-BLK-128", out.SkuCode, "el código omitido debe conservarse")
	f.skus.AssertExpectations(t)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete acotado al producto
// ──────────────────────────────────────────────────────────────────────────────

func TestSkuDelete_OK(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "sku-1", "prod-1").Return(blackSku(), nil).Once()
	f.skus.On("Delete", "sku-1").Return(nil).Once()

	require.NoError(t, f.uc.Delete("prod-1", "sku-1"))
	f.skus.AssertExpectations(t)
}

func TestSkuDelete_NoExisteBajoElProducto(t *testing.T) {
	f := newSkuFixture()

	f.products.On("GetByID", "prod-1").Return(phoneProduct(), nil).Once()
	f.skus.On("GetByIDAndProduct", "missing", "prod-1").Return(nil, nil).Once()

	err := f.uc.Delete("prod-1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.skus.AssertNotCalled(t, "Delete", mock.Anything)
}
