package afip

import (
	"fmt"
	"regexp"
)

// Códigos de tipo de comprobante AFIP (tabla de comprobantes del Libro IVA Digital)
// según la letra que encabeza la referencia del comprobante.
const (
	TipoComprobanteFacturaA     = "001" // Factura A
	TipoComprobanteFacturaB     = "006" // Factura B
	TipoComprobanteFacturaC     = "011" // Factura C
	TipoComprobanteFacturaM     = "112" // Factura M
	TipoComprobanteOtro         = "099" // Otros comprobantes
	TipoComprobanteTicket       = "081" // Tique emitido por controlador fiscal
	TipoComprobanteSinClasificar = "000" // Letra desconocida o ausente: sin clasificar, no es error
)

// tiposPorLetra mapea la letra del comprobante a su código AFIP de 3 dígitos.
var tiposPorLetra = map[byte]string{
	'A': TipoComprobanteFacturaA,
	'B': TipoComprobanteFacturaB,
	'C': TipoComprobanteFacturaC,
	'M': TipoComprobanteFacturaM,
	'X': TipoComprobanteOtro,
	'T': TipoComprobanteTicket,
}

// TipoComprobanteCodigo mapea el primer carácter de la referencia al código AFIP
// de 3 dígitos. Cualquier otra letra (o referencia vacía) devuelve "000":
// comprobante sin clasificar, nunca un error.
func TipoComprobanteCodigo(referencia string) string {
	if referencia == "" {
		return TipoComprobanteSinClasificar
	}
	if codigo, ok := tiposPorLetra[referencia[0]]; ok {
		return codigo
	}
	return TipoComprobanteSinClasificar
}

// referenciaRe: letra + 4 dígitos de punto de venta + 8 dígitos de número.
// Ej: "A000100001234" -> punto de venta 0001, número 00001234.
var referenciaRe = regexp.MustCompile(`^([A-Z])(\d{4})(\d{8})$`)

// ComprobanteRef es la referencia de un comprobante descompuesta.
type ComprobanteRef struct {
	Letra       string // A, B, C, M, X, T
	PuntoVenta  string // 4 dígitos, con ceros a la izquierda
	Numero      string // 8 dígitos, con ceros a la izquierda
	TipoCodigo  string // código AFIP de 3 dígitos según la letra
}

// ParseComprobanteRef descompone una referencia completa (letra + punto de venta
// + número). Una referencia incompleta o malformada es un error de validación:
// los certificados y el libro exigen el comprobante completo.
func ParseComprobanteRef(referencia string) (*ComprobanteRef, error) {
	m := referenciaRe.FindStringSubmatch(referencia)
	if m == nil {
		return nil, fmt.Errorf("afip: referencia de comprobante inválida %q (se espera letra + 4 dígitos de punto de venta + 8 de número)", referencia)
	}
	return &ComprobanteRef{
		Letra:      m[1],
		PuntoVenta: m[2],
		Numero:     m[3],
		TipoCodigo: TipoComprobanteCodigo(referencia),
	}, nil
}
