package libroiva_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pyme/internal/domain"
	"github.com/tu-usuario/gestion-pyme/internal/domain/libroiva"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func comprobanteDePrueba() libroiva.Comprobante {
	return libroiva.Comprobante{
		Referencia:    "A000100001234",
		Fecha:         fecha("2024-03-15"),
		CUITProveedor: "30-50000000-3",
		Proveedor:     "Distribuidora Güemes S.A.",
		Total:         dec("121000"),
		Impuestos: []libroiva.Impuesto{
			{Nombre: "IVA 21%", Monto: dec("21000")},
			{Nombre: "Percepción IIBB", Monto: dec("1500")},
			{Nombre: "Impuestos internos", Monto: dec("300")},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Relleno y formato de campos
// ──────────────────────────────────────────────────────────────────────────────

func TestRellenar_TextoYNumero(t *testing.T) {
	assert.Equal(t, "ABC  ", libroiva.Rellenar("ABC", 5, libroiva.CampoTexto))
	assert.Equal(t, "00123", libroiva.Rellenar("123", 5, libroiva.CampoNumero))
	assert.Equal(t, "     ", libroiva.Rellenar("", 5, libroiva.CampoTexto))
	assert.Equal(t, "00000", libroiva.Rellenar("", 5, libroiva.CampoNumero))
}

// El relleno no trunca: un valor más largo que el campo desborda la columna.
// Comportamiento heredado que no debe "corregirse" en silencio.
func TestRellenar_NoTrunca(t *testing.T) {
	assert.Equal(t, "ABCDEFGH", libroiva.Rellenar("ABCDEFGH", 5, libroiva.CampoTexto))
	assert.Equal(t, "1234567", libroiva.Rellenar("1234567", 5, libroiva.CampoNumero))
}

func TestFormatearCentavos(t *testing.T) {
	assert.Equal(t, "000000012100000", libroiva.FormatearCentavos(dec("121000"), 15))
	assert.Equal(t, "000000000000001", libroiva.FormatearCentavos(dec("0.01"), 15))
	assert.Equal(t, "000000000000000", libroiva.FormatearCentavos(decimal.Zero, 15))
	// 0.005 redondea al centavo hacia arriba
	assert.Equal(t, "000000000000001", libroiva.FormatearCentavos(dec("0.005"), 15))
}

// Los importes negativos pierden el signo: el libro registra un solo lado de
// la operación por archivo.
func TestFormatearCentavos_NegativoPierdeSigno(t *testing.T) {
	assert.Equal(t, "000000000012345", libroiva.FormatearCentavos(dec("-123.45"), 15))
}

func TestFormatearFechaCompacta(t *testing.T) {
	assert.Equal(t, "20240315", libroiva.FormatearFechaCompacta(fecha("2024-03-15")))
	assert.Equal(t, "00000000", libroiva.FormatearFechaCompacta(time.Time{}))
}

func TestNormalizarDenominacion(t *testing.T) {
	assert.Equal(t, "DISTRIBUIDORA GUEMES S.A.", libroiva.NormalizarDenominacion("Distribuidora Güemes S.A."))
	assert.Equal(t, "NUNEZ   HNOS", libroiva.NormalizarDenominacion("Núñez 漢 Hnos"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Línea de comprobante
// ──────────────────────────────────────────────────────────────────────────────

// Invariante del formato: toda línea mide exactamente 325 bytes, para
// cualquier comprobante válido.
func TestLineaComprobante_AnchoFijo(t *testing.T) {
	casos := []libroiva.Comprobante{
		comprobanteDePrueba(),
		{Referencia: "C000200000001", Fecha: fecha("2024-01-01"), CUITProveedor: "20222222223", Proveedor: "X", Total: dec("0.01")},
		{Referencia: "Z999", Fecha: time.Time{}, CUITProveedor: "", Proveedor: "", Total: decimal.Zero},
		{Referencia: "B000100000042", Fecha: fecha("2024-12-31"), CUITProveedor: "30500000003", Proveedor: strings.Repeat("A", 30), Total: dec("999999.99")},
	}
	for i, c := range casos {
		linea := libroiva.LineaComprobante(c)
		assert.Len(t, linea, libroiva.AnchoLineaComprobante, "caso %d", i)
	}
}

func TestLineaComprobante_CamposPosicionales(t *testing.T) {
	linea := libroiva.LineaComprobante(comprobanteDePrueba())
	require.Len(t, linea, 325)

	assert.Equal(t, "20240315", linea[0:8], "fecha")
	assert.Equal(t, "001", linea[8:11], "tipo de comprobante (factura A)")
	assert.Equal(t, "00001", linea[11:16], "punto de venta")
	assert.Equal(t, "00000000000000001234", linea[16:36], "número de comprobante")
	assert.Equal(t, strings.Repeat(" ", 16), linea[36:52], "despacho de importación vacío")
	assert.Equal(t, "80", linea[52:54], "código de documento CUIT")
	assert.Equal(t, "00000000030500000003", linea[54:74], "CUIT del vendedor")
	assert.Equal(t, "DISTRIBUIDORA GUEMES S.A.     ", linea[74:104], "denominación")
	assert.Equal(t, "000000012100000", linea[104:119], "importe total")
	assert.Equal(t, "000000000000000", linea[119:134], "no gravado siempre cero")
	assert.Equal(t, "000000000000000", linea[134:149], "exento siempre cero")
	assert.Equal(t, "000000002100000", linea[149:164], "IVA")
	assert.Equal(t, "000000000000000", linea[164:179], "otros nacionales siempre cero")
	assert.Equal(t, "000000000150000", linea[179:194], "percepción IIBB")
	assert.Equal(t, "PES", linea[224:227], "moneda")
	assert.Equal(t, "0001000000", linea[227:237], "tipo de cambio 1.000000")
	assert.Equal(t, "1", linea[237:238], "cantidad de alícuotas")
	assert.Equal(t, "0", linea[238:239], "código de operación")
	assert.Equal(t, "000000002100000", linea[239:254], "crédito fiscal = IVA")
	assert.Equal(t, "000000000030000", linea[254:269], "otros tributos (internos)")
	assert.Equal(t, strings.Repeat(" ", 11), linea[269:280], "CUIT corredor vacío")
	assert.Equal(t, strings.Repeat(" ", 30), linea[280:310], "denominación corredor vacía")
	assert.Equal(t, "000000000000000", linea[310:325], "IVA comisión siempre cero")
}

// Referencia malformada: tipo "000" y punto de venta/número en cero, nunca
// aborta la línea.
func TestLineaComprobante_ReferenciaMalformada(t *testing.T) {
	c := comprobanteDePrueba()
	c.Referencia = "FC-123"
	linea := libroiva.LineaComprobante(c)
	require.Len(t, linea, 325)
	assert.Equal(t, "000", linea[8:11])
	assert.Equal(t, "00000", linea[11:16])
	assert.Equal(t, strings.Repeat("0", 20), linea[16:36])
}

// ──────────────────────────────────────────────────────────────────────────────
// Línea de alícuota
// ──────────────────────────────────────────────────────────────────────────────

func TestLineaAlicuota_AnchoYCampos(t *testing.T) {
	linea := libroiva.LineaAlicuota(comprobanteDePrueba())
	require.Len(t, linea, libroiva.AnchoLineaAlicuota)

	assert.Equal(t, "001", linea[0:3], "tipo de comprobante")
	assert.Equal(t, "00001", linea[3:8], "punto de venta")
	assert.Equal(t, "80", linea[28:30], "código de documento")
	// neto gravado = 121000 - 21000 - 1500 - 300 = 98200
	assert.Equal(t, "000000009820000", linea[50:65], "neto gravado")
	// 21000 / 98200 = 0.2138... -> cae en el código general 0004
	assert.Equal(t, "0004", linea[65:69], "código de alícuota")
	assert.Equal(t, "000000002100000", linea[69:84], "impuesto liquidado")
}

func TestLineaAlicuota_TasaReducida(t *testing.T) {
	c := libroiva.Comprobante{
		Referencia:    "A000100000001",
		Fecha:         fecha("2024-06-01"),
		CUITProveedor: "30500000003",
		Proveedor:     "Campo S.A.",
		Total:         dec("110500"),
		Impuestos:     []libroiva.Impuesto{{Nombre: "IVA 10.5%", Monto: dec("10500")}},
	}
	linea := libroiva.LineaAlicuota(c)
	// neto 100000, 10500/100000 = 0.105 -> código 0005
	assert.Equal(t, "0005", linea[65:69])
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func TestExportarLineasComprobantes_UnaPorRegistro(t *testing.T) {
	cbtes := []libroiva.Comprobante{comprobanteDePrueba(), comprobanteDePrueba()}
	lineas := libroiva.ExportarLineasComprobantes(cbtes)
	require.Len(t, lineas, 2)
	for _, l := range lineas {
		assert.Len(t, l, 325)
	}
}

// Pureza: dos exportaciones con la misma entrada producen salida idéntica.
func TestExportarLibroCompras_Determinista(t *testing.T) {
	cbtes := []libroiva.Comprobante{comprobanteDePrueba()}
	a, err1 := libroiva.ExportarLibroCompras(cbtes, "2024-03-01", "2024-03-31")
	b, err2 := libroiva.ExportarLibroCompras(cbtes, "2024-03-01", "2024-03-31")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a, b)
}

func TestExportarLibroCompras_UneLineasConSaltoDeLinea(t *testing.T) {
	cbtes := []libroiva.Comprobante{comprobanteDePrueba(), comprobanteDePrueba()}
	contenido, err := libroiva.ExportarLibroCompras(cbtes, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	partes := strings.Split(contenido, "\n")
	assert.Len(t, partes, 2)
}

// Sin rango de fechas no se genera archivo parcial: error de validación.
func TestExportarLibroCompras_RangoRequerido(t *testing.T) {
	cbtes := []libroiva.Comprobante{comprobanteDePrueba()}
	_, err := libroiva.ExportarLibroCompras(cbtes, "", "2024-03-31")
	assert.ErrorIs(t, err, domain.ErrRangoFechasRequerido)
	_, err = libroiva.ExportarLibroCompras(cbtes, "2024-03-01", "")
	assert.ErrorIs(t, err, domain.ErrRangoFechasRequerido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desbordes
// ──────────────────────────────────────────────────────────────────────────────

func TestDesbordes(t *testing.T) {
	c := comprobanteDePrueba()
	assert.Empty(t, c.Desbordes())

	c.Proveedor = strings.Repeat("X", 31)
	assert.Contains(t, c.Desbordes(), "denominacion")

	c.CUITProveedor = "305000000031234567890"
	assert.Contains(t, c.Desbordes(), "cuit")
}
