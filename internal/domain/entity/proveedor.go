package entity

import "time"

// Proveedor representa un proveedor de la empresa.
// CondicionGanancias determina la alícuota de retención aplicable (RG 830):
// "Inscripto" o "No inscripto".
type Proveedor struct {
	ID                 string
	EmpresaID          string
	RazonSocial        string
	CUIT               string
	CondicionGanancias string
	Email              string
	Telefono           string
	Direccion          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
