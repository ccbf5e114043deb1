package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a exactamente una categoría. (Name, CategoryID) es único.
// CategoryName y SkuCount son derivados del join al leer; no se persisten.
type Product struct {
	ID           string
	Name         string
	Description  string
	BasePrice    decimal.Decimal
	Brand        string
	CategoryID   string
	CategoryName string
	SkuCount     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
