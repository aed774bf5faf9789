package dto

import "github.com/shopspring/decimal"

// CreatePagoRequest body para POST /api/pagos.
// Si EmitirRetencion es true se calcula y emite el certificado de retención
// de Ganancias junto con el pago, en la misma transacción.
type CreatePagoRequest struct {
	ProveedorID     string          `json:"proveedor_id"`
	FacturaID       string          `json:"factura_id,omitempty"`
	Fecha           string          `json:"fecha"`
	Monto           decimal.Decimal `json:"monto"`
	MedioPago       string          `json:"medio_pago"`
	Detalle         string          `json:"detalle,omitempty"`
	EmitirRetencion bool            `json:"emitir_retencion,omitempty"`
	CodigoRegimen   string          `json:"codigo_regimen,omitempty"` // requerido si EmitirRetencion
}

// PagoResponse pago en respuestas.
type PagoResponse struct {
	ID            string          `json:"id"`
	EmpresaID     string          `json:"empresa_id"`
	ProveedorID   string          `json:"proveedor_id"`
	FacturaID     string          `json:"factura_id,omitempty"`
	Fecha         string          `json:"fecha"`
	Monto         decimal.Decimal `json:"monto"`
	MedioPago     string          `json:"medio_pago"`
	CertificadoID string          `json:"certificado_id,omitempty"`
	Detalle       string          `json:"detalle,omitempty"`
}
