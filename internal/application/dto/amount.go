package dto

import "github.com/shopspring/decimal"

// maxAmount límite superior exclusivo: 8 dígitos enteros.
var maxAmount = decimal.New(1, 8)

// ValidAmount verifica la regla de precisión de precios: positivo,
// a lo sumo 8 dígitos enteros y 2 decimales. El validador de structs
// no opera sobre decimal.Decimal, así que la regla se aplica a mano.
func ValidAmount(d decimal.Decimal) bool {
	if !d.IsPositive() {
		return false
	}
	if !d.Equal(d.Round(2)) {
		return false
	}
	return d.LessThan(maxAmount)
}
