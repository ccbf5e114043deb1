package entity

import "time"

// Category agrupa productos. Name es único global (case-sensitive).
// ProductCount es derivado al leer (conteo explícito, no se persiste).
type Category struct {
	ID           string
	Name         string
	Description  string
	ProductCount int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
