package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sku es la variante vendible de un producto. SkuCode es único global,
// no por producto. ProductName es derivado del join al leer.
type Sku struct {
	ID          string
	SkuCode     string
	Name        string
	Attributes  string
	Price       decimal.Decimal
	Quantity    int
	ProductID   string
	ProductName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
