// Package libroiva genera el Libro IVA Digital de compras (AFIP): un archivo
// plano de columnas fijas, una línea por comprobante, sin separadores. Los
// anchos de campo y las reglas de relleno (ceros a la izquierda para importes,
// espacios a la derecha para texto) deben coincidir byte a byte con lo que
// espera el aplicativo fiscal; cualquier cambio de ancho rompe el contrato
// externo.
package libroiva

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// Nombres de archivo fijos que espera el aplicativo.
const (
	NombreArchivoCompras          = "LIBRO_IVA_DIGITAL_COMPRAS_CBTE.txt"
	NombreArchivoComprasAlicuotas = "LIBRO_IVA_DIGITAL_COMPRAS_ALICUOTAS.txt"
)

// Anchos totales de línea: suma de los anchos de todos los campos.
const (
	AnchoLineaComprobante = 325 // 25 campos del registro de comprobantes
	AnchoLineaAlicuota    = 84  // 8 campos del registro de alícuotas
)

// Impuesto es un impuesto discriminado del comprobante.
type Impuesto struct {
	Nombre string
	Monto  decimal.Decimal
}

// Comprobante es la fila de entrada del libro de compras: valores planos ya
// resueltos por la capa de datos (el proveedor viene con su CUIT y razón
// social, no como referencia).
type Comprobante struct {
	Referencia    string // letra + punto de venta (4) + número (8), ej "A000100001234"
	Fecha         time.Time
	CUITProveedor string
	Proveedor     string
	Total         decimal.Decimal
	Impuestos     []Impuesto
}

// TipoCampo indica la regla de relleno de un campo de ancho fijo.
type TipoCampo int

const (
	CampoTexto  TipoCampo = iota // justificado a la izquierda, espacios a la derecha
	CampoNumero                  // justificado a la derecha, ceros a la izquierda
)

// Rellenar completa un valor al ancho del campo según su tipo. NO trunca: si
// el valor supera el ancho, el relleno no hace nada y el campo desborda la
// columna. Ese desborde corrompe las columnas siguientes; se mantiene porque
// no hay confirmación de que el aplicativo receptor tolere el truncado — el
// caller debe advertirlo con Desbordes antes de exportar.
func Rellenar(valor string, ancho int, tipo TipoCampo) string {
	if len(valor) >= ancho {
		return valor
	}
	if tipo == CampoNumero {
		return strings.Repeat("0", ancho-len(valor)) + valor
	}
	return valor + strings.Repeat(" ", ancho-len(valor))
}

// FormatearCentavos expresa un importe como entero de centavos sin signo,
// completado con ceros a la izquierda. El signo se descarta (valor absoluto):
// el libro registra un solo lado de la operación por archivo.
func FormatearCentavos(monto decimal.Decimal, ancho int) string {
	centavos := monto.Abs().Mul(decimal.NewFromInt(100)).Round(0)
	return Rellenar(centavos.String(), ancho, CampoNumero)
}

// FormatearFechaCompacta serializa la fecha como YYYYMMDD.
// Una fecha cero produce "00000000" en lugar de abortar la exportación.
func FormatearFechaCompacta(t time.Time) string {
	if t.IsZero() {
		return "00000000"
	}
	return t.Format("20060102")
}

// NormalizarDenominacion translitera la razón social a ASCII en mayúsculas:
// quita tildes y diéresis, y reemplaza por espacio todo lo que quede fuera del
// ASCII imprimible. En un archivo de columnas fijas un carácter multibyte
// rompería la alineación en bytes.
func NormalizarDenominacion(s string) string {
	sinAcentos := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plano, _, err := transform.String(sinAcentos, s)
	if err != nil {
		plano = s
	}
	var b strings.Builder
	b.Grow(len(plano))
	for _, r := range strings.ToUpper(plano) {
		if r >= 0x20 && r < 0x7f {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// clasificarImpuestos separa los impuestos discriminados en IVA, percepciones
// de ingresos brutos y otros tributos, por nombre.
func clasificarImpuestos(impuestos []Impuesto) (iva, iibb, otros decimal.Decimal) {
	for _, im := range impuestos {
		nombre := NormalizarDenominacion(im.Nombre)
		switch {
		case strings.Contains(nombre, "IVA"):
			iva = iva.Add(im.Monto)
		case strings.Contains(nombre, "IIBB") || strings.Contains(nombre, "INGRESOS BRUTOS"):
			iibb = iibb.Add(im.Monto)
		default:
			otros = otros.Add(im.Monto)
		}
	}
	return iva, iibb, otros
}

// puntoVentaYNumero extrae punto de venta y número de la referencia. Una
// referencia malformada degrada a ceros: una fila defectuosa no aborta el
// libro completo.
func puntoVentaYNumero(referencia string) (pv, nro string) {
	ref, err := afip.ParseComprobanteRef(referencia)
	if err != nil {
		return "0000", "00000000"
	}
	return ref.PuntoVenta, ref.Numero
}

// LineaComprobante arma la línea de 325 bytes del registro de comprobantes:
// 25 campos posicionales concatenados sin separadores.
func LineaComprobante(c Comprobante) string {
	pv, nro := puntoVentaYNumero(c.Referencia)
	iva, iibb, otros := clasificarImpuestos(c.Impuestos)
	cero := FormatearCentavos(decimal.Zero, 15)

	var b strings.Builder
	b.Grow(AnchoLineaComprobante)
	b.WriteString(FormatearFechaCompacta(c.Fecha))                          // 1  fecha (8)
	b.WriteString(afip.TipoComprobanteCodigo(c.Referencia))                 // 2  tipo de comprobante (3)
	b.WriteString(Rellenar(pv, 5, CampoNumero))                             // 3  punto de venta (5)
	b.WriteString(Rellenar(nro, 20, CampoNumero))                           // 4  número de comprobante (20)
	b.WriteString(Rellenar("", 16, CampoTexto))                             // 5  despacho de importación (16)
	b.WriteString(afip.DocTipoCUIT)                                         // 6  código de documento del vendedor (2)
	b.WriteString(Rellenar(afip.NormalizeCUIT(c.CUITProveedor), 20, CampoNumero)) // 7  nro de identificación del vendedor (20)
	b.WriteString(Rellenar(NormalizarDenominacion(c.Proveedor), 30, CampoTexto))  // 8  denominación del vendedor (30)
	b.WriteString(FormatearCentavos(c.Total, 15))                           // 9  importe total de la operación (15)
	b.WriteString(cero)                                                     // 10 conceptos no gravados (15)
	b.WriteString(cero)                                                     // 11 operaciones exentas (15)
	b.WriteString(FormatearCentavos(iva, 15))                               // 12 percepciones o pagos a cuenta de IVA (15)
	b.WriteString(cero)                                                     // 13 percepciones de otros impuestos nacionales (15)
	b.WriteString(FormatearCentavos(iibb, 15))                              // 14 percepciones de ingresos brutos (15)
	b.WriteString(cero)                                                     // 15 percepciones de impuestos municipales (15)
	b.WriteString(cero)                                                     // 16 impuestos internos (15)
	b.WriteString(afip.MonedaPeso)                                          // 17 código de moneda (3)
	b.WriteString(afip.TipoCambioPesos)                                     // 18 tipo de cambio (10)
	b.WriteString("1")                                                      // 19 cantidad de alícuotas de IVA (1)
	b.WriteString("0")                                                      // 20 código de operación (1)
	b.WriteString(FormatearCentavos(iva, 15))                               // 21 crédito fiscal computable (15)
	b.WriteString(FormatearCentavos(otros, 15))                             // 22 otros tributos (15)
	b.WriteString(Rellenar("", 11, CampoTexto))                             // 23 CUIT emisor/corredor (11)
	b.WriteString(Rellenar("", 30, CampoTexto))                             // 24 denominación emisor/corredor (30)
	b.WriteString(cero)                                                     // 25 IVA comisión (15)
	return b.String()
}

// LineaAlicuota arma la línea de 84 bytes del registro de alícuotas que
// acompaña al de comprobantes (una alícuota por comprobante).
// La tasa se infiere del neto gravado (total menos impuestos) y el IVA
// discriminado, redondeada a 3 decimales antes de clasificarla.
func LineaAlicuota(c Comprobante) string {
	pv, nro := puntoVentaYNumero(c.Referencia)
	iva, iibb, otros := clasificarImpuestos(c.Impuestos)
	neto := c.Total.Sub(iva).Sub(iibb).Sub(otros)

	tasa := decimal.Zero
	if neto.GreaterThan(decimal.Zero) {
		tasa = iva.Div(neto).Round(3)
	}

	var b strings.Builder
	b.Grow(AnchoLineaAlicuota)
	b.WriteString(afip.TipoComprobanteCodigo(c.Referencia)) // tipo de comprobante (3)
	b.WriteString(Rellenar(pv, 5, CampoNumero))             // punto de venta (5)
	b.WriteString(Rellenar(nro, 20, CampoNumero))           // número de comprobante (20)
	b.WriteString(afip.DocTipoCUIT)                         // código de documento del vendedor (2)
	b.WriteString(Rellenar(afip.NormalizeCUIT(c.CUITProveedor), 20, CampoNumero)) // nro de identificación (20)
	b.WriteString(FormatearCentavos(neto, 15))              // neto gravado (15)
	b.WriteString(afip.AlicuotaCodigo(tasa))                // código de alícuota (4)
	b.WriteString(FormatearCentavos(iva, 15))               // impuesto liquidado (15)
	return b.String()
}

// ExportarLineasComprobantes produce una línea por comprobante, en el orden de
// entrada. Función pura de la lista: dos llamadas con la misma entrada
// producen exactamente la misma salida.
func ExportarLineasComprobantes(comprobantes []Comprobante) []string {
	lineas := make([]string, 0, len(comprobantes))
	for _, c := range comprobantes {
		lineas = append(lineas, LineaComprobante(c))
	}
	return lineas
}

// ExportarLineasAlicuotas produce el archivo de alícuotas correspondiente.
func ExportarLineasAlicuotas(comprobantes []Comprobante) []string {
	lineas := make([]string, 0, len(comprobantes))
	for _, c := range comprobantes {
		lineas = append(lineas, LineaAlicuota(c))
	}
	return lineas
}

// ExportarLibroCompras arma el contenido del archivo de comprobantes para el
// rango de fechas dado. Ambas fechas son obligatorias: sin rango no se genera
// archivo parcial, se rechaza la operación completa.
func ExportarLibroCompras(comprobantes []Comprobante, desde, hasta string) (string, error) {
	if desde == "" || hasta == "" {
		return "", domain.ErrRangoFechasRequerido
	}
	return strings.Join(ExportarLineasComprobantes(comprobantes), "\n"), nil
}

// Desbordes informa los campos del comprobante cuyo valor supera el ancho de
// su columna (la denominación normalizada más larga que 30 bytes, o un CUIT
// con dígitos de más). El relleno no trunca, así que un desborde corre todas
// las columnas siguientes; el caller decide si advertir o rechazar.
func (c Comprobante) Desbordes() []string {
	var out []string
	if len(NormalizarDenominacion(c.Proveedor)) > 30 {
		out = append(out, "denominacion")
	}
	if len(afip.NormalizeCUIT(c.CUITProveedor)) > 20 {
		out = append(out, "cuit")
	}
	return out
}
