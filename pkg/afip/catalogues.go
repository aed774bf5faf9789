// Package afip contiene catálogos y validaciones alineados a los formatos de
// presentación de AFIP (Argentina): Libro IVA Digital, régimen de retención de
// Ganancias RG 830 y codificación de comprobantes.
package afip

import "github.com/shopspring/decimal"

// =============================================================================
// Tipos de documento del vendedor (Libro IVA Digital, campo "código de documento")
// =============================================================================

const (
	DocTipoCUIT = "80" // CUIT
	DocTipoCUIL = "86" // CUIL
	DocTipoDNI  = "96" // DNI
)

// =============================================================================
// Moneda y tipo de cambio (Libro IVA Digital)
// =============================================================================

const (
	MonedaPeso = "PES" // Pesos argentinos

	// TipoCambioPesos es el literal fijo de tipo de cambio para operaciones en
	// pesos: 1.000000 con 6 decimales implícitos, ancho 10.
	TipoCambioPesos = "0001000000"
)

// =============================================================================
// Alícuotas de IVA (códigos de la tabla de alícuotas del Libro IVA Digital)
// =============================================================================

const (
	AlicuotaCodigo27   = "0003" // 27%
	AlicuotaCodigo21   = "0004" // 21% (general)
	AlicuotaCodigo10_5 = "0005" // 10,5% (reducida)
)

var (
	tasaReducida  = decimal.RequireFromString("0.105")
	tasaAumentada = decimal.RequireFromString("0.27")
)

// AlicuotaCodigo clasifica una tasa de IVA en su código de alícuota.
// Es un clasificador de tres estados por igualdad exacta: 0.105 y 0.27 tienen
// código propio; cualquier otra tasa (incluida la habitual 0.21) cae en el
// código general "0004". No se compara con tolerancia numérica.
func AlicuotaCodigo(tasa decimal.Decimal) string {
	switch {
	case tasa.Equal(tasaReducida):
		return AlicuotaCodigo10_5
	case tasa.Equal(tasaAumentada):
		return AlicuotaCodigo27
	default:
		return AlicuotaCodigo21
	}
}

// =============================================================================
// Condición frente al Impuesto a las Ganancias (RG 830)
// =============================================================================

const (
	CondicionInscripto   = "Inscripto"
	CondicionNoInscripto = "No inscripto"
)

// =============================================================================
// Operación y tasa de IVA por defecto
// =============================================================================

// TasaIVAGeneral es la alícuota general de IVA (21%).
var TasaIVAGeneral = decimal.RequireFromString("0.21")
