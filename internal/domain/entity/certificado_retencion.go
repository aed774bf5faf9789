package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CertificadoRetencion representa un certificado de retención de Ganancias
// (RG 830) emitido a un proveedor. Inmutable una vez emitido: una corrección
// genera un nuevo certificado, nunca muta el histórico.
type CertificadoRetencion struct {
	ID                 string
	EmpresaID          string
	Numero             string // asignado al persistir; secuencial por empresa y año
	FechaEmision       time.Time
	ProveedorID        string
	ProveedorNombre    string
	ProveedorCUIT      string
	NumeroComprobante  string // referencia completa: letra + punto de venta + número
	FechaComprobante   time.Time
	ImporteTotal       decimal.Decimal
	ImporteNeto        decimal.Decimal
	IVA                decimal.Decimal
	CodigoRegimen      string // código RG 830, ej: "19", "94", "116"
	DetalleRegimen     string
	CondicionGanancias string // "Inscripto" | "No inscripto"
	ImporteRetenido    decimal.Decimal
	TotalAPagar        decimal.Decimal
	CreatedAt          time.Time
}
