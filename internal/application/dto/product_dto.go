package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// BasePrice se valida aparte con ValidAmount.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"omitempty,max=1000"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	Brand       string          `json:"brand" validate:"required,min=1,max=100"`
	CategoryID  string          `json:"categoryId" validate:"required"`
}

// UpdateProductRequest entrada para actualización parcial de un producto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	BasePrice   *decimal.Decimal `json:"basePrice"`
	Brand       *string          `json:"brand" validate:"omitempty,min=1,max=100"`
	CategoryID  *string          `json:"categoryId"`
}

// ListProductsQuery parámetros de listado. Página en base cero.
type ListProductsQuery struct {
	Name       string
	CategoryID string
	Page       int
	PageSize   int
}

// ProductResponse salida de un producto con categoría denormalizada.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	Brand        string          `json:"brand"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	SkuCount     int64           `json:"skuCount"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductPage sobre de página: contenido más metadatos de paginación.
type ProductPage struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	PageSize      int               `json:"pageSize"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
}
