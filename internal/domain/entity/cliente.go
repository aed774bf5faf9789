package entity

import "time"

// Cliente representa un cliente de la empresa (ventas).
type Cliente struct {
	ID           string
	EmpresaID    string
	RazonSocial  string
	CUIT         string
	CondicionIVA string // "Responsable Inscripto", "Consumidor Final", "Monotributo", "Exento"
	Email        string
	Telefono     string
	Direccion    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
