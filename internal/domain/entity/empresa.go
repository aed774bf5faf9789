package entity

import "time"

// Empresa representa la empresa (tenant) dueña de los datos.
type Empresa struct {
	ID           string
	RazonSocial  string
	CUIT         string
	CondicionIVA string // "Responsable Inscripto", "Monotributo", "Exento"
	Direccion    string
	Email        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
