package entity

import "time"

// Articulo representa un artículo de stock.
type Articulo struct {
	ID          string
	EmpresaID   string
	Codigo      string
	Descripcion string
	Unidad      string // "unidad", "kg", "lt", ...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
