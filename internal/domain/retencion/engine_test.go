package retencion_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pyme/internal/domain/retencion"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Desglose neto / IVA
// ──────────────────────────────────────────────────────────────────────────────

func TestNetoEIVA_VectorExacto(t *testing.T) {
	neto, iva := retencion.NetoEIVA(dec("100000"))
	assert.True(t, neto.Equal(dec("82644.63")), "neto: esperado 82644.63, obtenido %s", neto)
	assert.True(t, iva.Equal(dec("17355.37")), "IVA: esperado 17355.37, obtenido %s", iva)
}

func TestNetoEIVA_Cero(t *testing.T) {
	neto, iva := retencion.NetoEIVA(decimal.Zero)
	assert.True(t, neto.IsZero())
	assert.True(t, iva.IsZero())
}

// Propiedad: neto + IVA reconstruye el total al centavo, para cualquier bruto.
func TestNetoEIVA_SumaReconstruyeTotal(t *testing.T) {
	totales := []string{"0.01", "1", "121", "1000", "10000", "99999.99", "123456.78", "1000000"}
	for _, s := range totales {
		total := dec(s)
		neto, iva := retencion.NetoEIVA(total)
		assert.True(t, neto.Add(iva).Equal(total),
			"neto (%s) + IVA (%s) debe reconstruir el total %s", neto, iva, total)
	}
}

func TestNetoEIVAConTasa_Reducida(t *testing.T) {
	// 10.5%: 110.50 / 1.105 = 100.00
	neto, iva := retencion.NetoEIVAConTasa(dec("110.50"), dec("0.105"))
	assert.True(t, neto.Equal(dec("100")), "neto: %s", neto)
	assert.True(t, iva.Equal(dec("10.50")), "iva: %s", iva)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escala progresiva
// ──────────────────────────────────────────────────────────────────────────────

func TestRetencionPorEscala_DebajoDelMinimo(t *testing.T) {
	ret := retencion.RetencionPorEscala(dec("67170"), dec("67170"), retencion.Escala())
	assert.True(t, ret.IsZero(), "neto igual al monto no sujeto no retiene")

	ret = retencion.RetencionPorEscala(dec("50000"), dec("67170"), retencion.Escala())
	assert.True(t, ret.IsZero(), "neto por debajo del monto no sujeto no retiene")
}

func TestRetencionPorEscala_SegundoTramo(t *testing.T) {
	// sujeto = 77170 - 67170 = 10000 -> tramo [8000, 16000): 400 + 2000*0.09 = 580
	ret := retencion.RetencionPorEscala(dec("77170"), dec("67170"), retencion.Escala())
	assert.True(t, ret.Equal(dec("580")), "esperado 580, obtenido %s", ret)
}

func TestRetencionPorEscala_UltimoTramoAbierto(t *testing.T) {
	// sujeto = 200000 -> tramo abierto: 18640 + (200000-96000)*0.31 = 50880
	ret := retencion.RetencionPorEscala(dec("200000"), decimal.Zero, retencion.Escala())
	assert.True(t, ret.Equal(dec("50880")), "esperado 50880, obtenido %s", ret)
}

// La escala es continua: en cada límite de tramo el fijo acumula exactamente
// los tramos anteriores, así que la retención no salta al cruzar el límite.
func TestRetencionPorEscala_ContinuidadEnLimites(t *testing.T) {
	limites := []string{"8000", "16000", "24000", "32000", "48000", "64000", "96000"}
	centavo := dec("0.01")
	for _, l := range limites {
		limite := dec(l)
		abajo := retencion.RetencionPorEscala(limite.Sub(centavo), decimal.Zero, retencion.Escala())
		arriba := retencion.RetencionPorEscala(limite, decimal.Zero, retencion.Escala())
		diff := arriba.Sub(abajo)
		assert.True(t, diff.LessThanOrEqual(centavo) && diff.GreaterThanOrEqual(decimal.Zero),
			"la retención debe ser continua en el límite %s (abajo %s, arriba %s)", l, abajo, arriba)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcularRetencion
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: régimen 94 (bienes muebles, monto no sujeto 67170,
// alícuota inscripto 2%), bruto 100000.
func TestCalcularRetencion_Regimen94Inscripto(t *testing.T) {
	r := retencion.CalcularRetencion("94", true, dec("100000"))
	assert.True(t, r.Neto.Equal(dec("82644.63")), "neto: %s", r.Neto)
	assert.True(t, r.IVA.Equal(dec("17355.37")), "IVA: %s", r.IVA)
	// (82644.63 - 67170) * 0.02 = 309.4926 -> 309.49
	assert.True(t, r.Retencion.Equal(dec("309.49")), "retención: %s", r.Retencion)
}

// Vector de referencia: régimen 19 (monto no sujeto 0), no inscripto 10%.
func TestCalcularRetencion_Regimen19NoInscripto(t *testing.T) {
	r := retencion.CalcularRetencion("19", false, dec("10000"))
	assert.True(t, r.Neto.Equal(dec("8264.46")), "neto: %s", r.Neto)
	// 8264.46 * 0.10 = 826.446 -> 826.45
	assert.True(t, r.Retencion.Equal(dec("826.45")), "retención: %s", r.Retencion)
}

func TestCalcularRetencion_RegimenConEscala(t *testing.T) {
	// Régimen 116 usa escala para inscriptos y no inscriptos por igual.
	inscripto := retencion.CalcularRetencion("116", true, dec("100000"))
	noInscripto := retencion.CalcularRetencion("116", false, dec("100000"))
	assert.True(t, inscripto.Retencion.Equal(noInscripto.Retencion),
		"la escala se aplica sin distinguir condición: %s vs %s", inscripto.Retencion, noInscripto.Retencion)
	assert.True(t, inscripto.Retencion.GreaterThan(decimal.Zero))
}

func TestCalcularRetencion_BrutoNoPositivo(t *testing.T) {
	for _, s := range []string{"0", "-1", "-100.50"} {
		r := retencion.CalcularRetencion("94", true, dec(s))
		assert.True(t, r.Retencion.IsZero(), "bruto %s", s)
		assert.True(t, r.Neto.IsZero())
		assert.True(t, r.IVA.IsZero())
	}
}

// Código de régimen desconocido: neto e IVA se calculan igual, retención cero.
// Política "ante código no catalogado, no retener" — nunca un error.
func TestCalcularRetencion_RegimenDesconocido(t *testing.T) {
	r := retencion.CalcularRetencion("999", true, dec("100000"))
	assert.True(t, r.Retencion.IsZero(), "régimen desconocido no retiene")
	assert.True(t, r.Neto.Equal(dec("82644.63")), "el neto se calcula igual")
	assert.True(t, r.IVA.Equal(dec("17355.37")), "el IVA se calcula igual")
}

func TestCalcularRetencion_NetoDebajoDelMontoNoSujeto(t *testing.T) {
	// Bruto 50000 -> neto 41322.31, por debajo del monto no sujeto de 94 (67170).
	r := retencion.CalcularRetencion("94", true, dec("50000"))
	assert.True(t, r.Retencion.IsZero())
	assert.True(t, r.Neto.Equal(dec("41322.31")))
}

// Monotonía: a mayor bruto, la retención nunca baja (régimen y condición fijos).
func TestCalcularRetencion_Monotonia(t *testing.T) {
	casos := []struct {
		codigo    string
		inscripto bool
	}{
		{"94", true},
		{"19", false},
		{"116", true},
		{"31", false},
	}
	for _, c := range casos {
		anterior := decimal.Zero
		for bruto := int64(0); bruto <= 500000; bruto += 12500 {
			r := retencion.CalcularRetencion(c.codigo, c.inscripto, decimal.NewFromInt(bruto))
			require.True(t, r.Retencion.GreaterThanOrEqual(anterior),
				"régimen %s inscripto=%v: retención bajó de %s a %s en bruto %d",
				c.codigo, c.inscripto, anterior, r.Retencion, bruto)
			anterior = r.Retencion
		}
	}
}

// Idempotencia: mismos parámetros, mismo resultado, sin estado oculto.
func TestCalcularRetencion_Determinista(t *testing.T) {
	r1 := retencion.CalcularRetencion("116", false, dec("250000"))
	r2 := retencion.CalcularRetencion("116", false, dec("250000"))
	assert.True(t, r1.Retencion.Equal(r2.Retencion))
	assert.True(t, r1.Neto.Equal(r2.Neto))
	assert.True(t, r1.IVA.Equal(r2.IVA))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscarCategoria(t *testing.T) {
	cat, ok := retencion.BuscarCategoria("94")
	require.True(t, ok)
	assert.Equal(t, "94", cat.Codigo)
	assert.True(t, cat.MontoNoSujeto.Equal(dec("67170")))
	require.NotNil(t, cat.AlicuotaInscripto)
	assert.True(t, cat.AlicuotaInscripto.Equal(dec("0.02")))

	_, ok = retencion.BuscarCategoria("999")
	assert.False(t, ok, "código desconocido no está en la tabla")
}

func TestCategorias_EscalaSoloSinAlicuotaInscripto(t *testing.T) {
	for _, cat := range retencion.Categorias() {
		if cat.UsaEscala {
			assert.Nil(t, cat.AlicuotaInscripto,
				"régimen %s: los regímenes con escala no tienen alícuota plana de inscripto", cat.Codigo)
		} else {
			assert.NotNil(t, cat.AlicuotaInscripto,
				"régimen %s: los regímenes planos deben tener alícuota de inscripto", cat.Codigo)
		}
	}
}

// Los tramos de la escala son contiguos y el último es abierto.
func TestEscala_TramosContiguos(t *testing.T) {
	tramos := retencion.Escala()
	require.NotEmpty(t, tramos)
	for i := 1; i < len(tramos); i++ {
		assert.True(t, tramos[i].Desde.Equal(tramos[i-1].Hasta),
			"tramo %d debe comenzar donde termina el anterior", i)
	}
	assert.True(t, tramos[len(tramos)-1].SinTope, "el último tramo debe ser abierto")
	for i, tr := range tramos[:len(tramos)-1] {
		assert.False(t, tr.SinTope, "solo el último tramo puede ser abierto (tramo %d)", i)
	}
}
