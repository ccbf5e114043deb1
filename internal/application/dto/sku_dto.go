package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSkuRequest entrada para crear un SKU bajo un producto.
// Quantity omitido equivale a 0. Price se valida aparte con ValidAmount.
type CreateSkuRequest struct {
	SkuCode    string          `json:"skuCode" validate:"required,min=3,max=50"`
	Name       string          `json:"name" validate:"required,min=2,max=200"`
	Attributes string          `json:"attributes" validate:"omitempty,max=500"`
	Price      decimal.Decimal `json:"price"`
	Quantity   *int            `json:"quantity" validate:"omitempty,gte=0"`
}

// UpdateSkuRequest entrada para actualización parcial de un SKU.
type UpdateSkuRequest struct {
	SkuCode    *string          `json:"skuCode" validate:"omitempty,min=3,max=50"`
	Name       *string          `json:"name" validate:"omitempty,min=2,max=200"`
	Attributes *string          `json:"attributes" validate:"omitempty,max=500"`
	Price      *decimal.Decimal `json:"price"`
	Quantity   *int             `json:"quantity" validate:"omitempty,gte=0"`
}

// SkuResponse salida de un SKU con producto denormalizado.
type SkuResponse struct {
	ID          string          `json:"id"`
	SkuCode     string          `json:"skuCode"`
	Name        string          `json:"name"`
	Attributes  string          `json:"attributes,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
