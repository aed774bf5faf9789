package dto

import "github.com/shopspring/decimal"

// PreviewRetencionRequest body para POST /api/retenciones/preview.
// Calcula la retención sin persistir nada; se puede llamar tantas veces
// como se quiera con el mismo resultado.
type PreviewRetencionRequest struct {
	ProveedorID       string          `json:"proveedor_id"`
	NumeroComprobante string          `json:"numero_comprobante"`
	FechaComprobante  string          `json:"fecha_comprobante,omitempty"`
	ImporteTotal      decimal.Decimal `json:"importe_total"`
	CodigoRegimen     string          `json:"codigo_regimen"`
}

// EmitirRetencionRequest body para POST /api/retenciones. Mismos campos que
// el preview; al emitir se asigna número secuencial y se persiste.
type EmitirRetencionRequest struct {
	ProveedorID       string          `json:"proveedor_id"`
	NumeroComprobante string          `json:"numero_comprobante"`
	FechaComprobante  string          `json:"fecha_comprobante"`
	ImporteTotal      decimal.Decimal `json:"importe_total"`
	CodigoRegimen     string          `json:"codigo_regimen"`
}

// CertificadoResponse certificado de retención en respuestas. En la
// respuesta del preview Numero lleva un marcador no durable
// (ej: "CR-20240115-1030-PREVIEW"); el número real se asigna al emitir.
type CertificadoResponse struct {
	ID                 string          `json:"id,omitempty"`
	EmpresaID          string          `json:"empresa_id"`
	Numero             string          `json:"numero"`
	FechaEmision       string          `json:"fecha_emision"`
	ProveedorID        string          `json:"proveedor_id"`
	ProveedorNombre    string          `json:"proveedor_nombre"`
	ProveedorCUIT      string          `json:"proveedor_cuit"`
	NumeroComprobante  string          `json:"numero_comprobante"`
	FechaComprobante   string          `json:"fecha_comprobante,omitempty"`
	ImporteTotal       decimal.Decimal `json:"importe_total"`
	ImporteNeto        decimal.Decimal `json:"importe_neto"`
	IVA                decimal.Decimal `json:"iva"`
	CodigoRegimen      string          `json:"codigo_regimen"`
	DetalleRegimen     string          `json:"detalle_regimen"`
	CondicionGanancias string          `json:"condicion_ganancias"`
	ImporteRetenido    decimal.Decimal `json:"importe_retenido"`
	TotalAPagar        decimal.Decimal `json:"total_a_pagar"`
}

// RegimenResponse categoría RG 830 para listar en el frontend.
type RegimenResponse struct {
	Codigo              string           `json:"codigo"`
	Detalle             string           `json:"detalle"`
	AlicuotaInscripto   *decimal.Decimal `json:"alicuota_inscripto,omitempty"` // nil cuando aplica escala
	AlicuotaNoInscripto decimal.Decimal  `json:"alicuota_no_inscripto"`
	MontoNoSujeto       decimal.Decimal  `json:"monto_no_sujeto"`
	UsaEscala           bool             `json:"usa_escala"`
}
