package balance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pyme/internal/domain/balance"
	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mov(tipo, monto, dia string) entity.MovimientoCaja {
	return entity.MovimientoCaja{
		Tipo:  tipo,
		Monto: dec(monto),
		Fecha: fecha(dia),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldos acumulados
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldosAcumulados_OrdenaPorFechaYAcumula(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoEgreso, "400", "2024-01-20"),
		mov(entity.MovimientoIngreso, "1000", "2024-01-10"),
		mov(entity.MovimientoIngreso, "500", "2024-02-05"),
	}
	out := balance.SaldosAcumulados(movimientos)
	require.Len(t, out, 3)

	assert.Equal(t, fecha("2024-01-10"), out[0].Fecha, "se ordena por fecha ascendente")
	assert.True(t, out[0].Saldo.Equal(dec("1000")))
	assert.True(t, out[1].Saldo.Equal(dec("600")))
	assert.True(t, out[2].Saldo.Equal(dec("1100")))
}

// Invariante: el saldo final es la suma de ingresos menos la suma de egresos.
func TestSaldosAcumulados_SaldoFinalEsSumaNeta(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "100.50", "2024-03-01"),
		mov(entity.MovimientoEgreso, "40.25", "2024-03-02"),
		mov(entity.MovimientoIngreso, "9.75", "2024-01-15"),
		mov(entity.MovimientoEgreso, "70", "2024-02-28"),
	}
	out := balance.SaldosAcumulados(movimientos)
	require.NotEmpty(t, out)
	// 100.50 + 9.75 - 40.25 - 70 = 0
	assert.True(t, out[len(out)-1].Saldo.IsZero(), "saldo final: %s", out[len(out)-1].Saldo)
}

func TestSaldosAcumulados_OrdenEstableEnMismaFecha(t *testing.T) {
	a := mov(entity.MovimientoIngreso, "1", "2024-01-10")
	a.Detalle = "primero"
	b := mov(entity.MovimientoIngreso, "2", "2024-01-10")
	b.Detalle = "segundo"
	out := balance.SaldosAcumulados([]entity.MovimientoCaja{a, b})
	require.Len(t, out, 2)
	assert.Equal(t, "primero", out[0].Detalle)
	assert.Equal(t, "segundo", out[1].Detalle)
}

// Un movimiento sin fecha (dato malformado) se excluye en silencio: una fila
// defectuosa no bloquea el cómputo del resto.
func TestSaldosAcumulados_DescartaSinFecha(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "1000", "2024-01-10"),
		{Tipo: entity.MovimientoIngreso, Monto: dec("9999")}, // sin fecha
	}
	out := balance.SaldosAcumulados(movimientos)
	require.Len(t, out, 1)
	assert.True(t, out[0].Saldo.Equal(dec("1000")))
}

func TestSaldosAcumulados_Vacio(t *testing.T) {
	assert.Empty(t, balance.SaldosAcumulados(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección mensual
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: enero ingresos 1000 / egresos 400, febrero ingresos 500.
func TestProyeccionMensual_VectorExacto(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "1000", "2024-01-10"),
		mov(entity.MovimientoEgreso, "400", "2024-01-20"),
		mov(entity.MovimientoIngreso, "500", "2024-02-05"),
	}
	out := balance.ProyeccionMensual(movimientos, 0)
	require.Len(t, out, 2)

	enero := out[0]
	assert.Equal(t, "2024-01", enero.Mes)
	assert.Equal(t, "enero 2024", enero.Etiqueta)
	assert.True(t, enero.Ingresos.Equal(dec("1000")))
	assert.True(t, enero.Egresos.Equal(dec("400")))
	assert.True(t, enero.Variacion.Equal(dec("600")))
	assert.True(t, enero.SaldoCierre.Equal(dec("600")))

	febrero := out[1]
	assert.Equal(t, "2024-02", febrero.Mes)
	assert.True(t, febrero.Ingresos.Equal(dec("500")))
	assert.True(t, febrero.Egresos.IsZero())
	assert.True(t, febrero.Variacion.Equal(dec("500")))
	assert.True(t, febrero.SaldoCierre.Equal(dec("1100")))
}

// Los meses futuros del horizonte no tienen actividad y arrastran el cierre.
func TestProyeccionMensual_HorizonteArrastraSaldo(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "1000", "2024-01-10"),
	}
	out := balance.ProyeccionMensual(movimientos, 3)
	require.Len(t, out, 4)

	assert.Equal(t, "2024-02", out[1].Mes)
	assert.Equal(t, "2024-03", out[2].Mes)
	assert.Equal(t, "2024-04", out[3].Mes)
	for _, mes := range out[1:] {
		assert.True(t, mes.Ingresos.IsZero())
		assert.True(t, mes.Egresos.IsZero())
		assert.True(t, mes.SaldoCierre.Equal(dec("1000")), "mes %s arrastra el saldo", mes.Mes)
	}
}

func TestProyeccionMensual_SinMovimientos(t *testing.T) {
	assert.Nil(t, balance.ProyeccionMensual(nil, 6))
}

// Recalcular con la misma entrada produce la misma proyección.
func TestProyeccionMensual_Determinista(t *testing.T) {
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "1000", "2024-01-10"),
		mov(entity.MovimientoEgreso, "250", "2024-03-15"),
	}
	a := balance.ProyeccionMensual(movimientos, 2)
	b := balance.ProyeccionMensual(movimientos, 2)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Mes, b[i].Mes)
		assert.True(t, a[i].SaldoCierre.Equal(b[i].SaldoCierre))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtro de futuros
// ──────────────────────────────────────────────────────────────────────────────

func TestSoloFuturos_FiltraPorFechaDeImpacto(t *testing.T) {
	efectiva := fecha("2024-06-15")
	movimientos := []entity.MovimientoCaja{
		mov(entity.MovimientoIngreso, "1", "2024-05-01"), // pasado
		mov(entity.MovimientoIngreso, "2", "2024-06-01"), // hoy
		mov(entity.MovimientoIngreso, "3", "2024-07-01"), // futuro
		{ // fecha pasada pero efectiva futura: cuenta como futuro
			Tipo: entity.MovimientoEgreso, Monto: dec("4"),
			Fecha: fecha("2024-05-20"), FechaEfectiva: &efectiva,
		},
	}
	out := balance.SoloFuturos(movimientos, fecha("2024-06-01"))
	require.Len(t, out, 3)
	assert.True(t, out[0].Monto.Equal(dec("2")), "la fecha igual a la referencia se incluye")
	assert.True(t, out[1].Monto.Equal(dec("3")))
	assert.True(t, out[2].Monto.Equal(dec("4")), "manda la fecha efectiva cuando existe")
}

func TestSoloFuturos_GranularidadDeDia(t *testing.T) {
	m := entity.MovimientoCaja{
		Tipo:  entity.MovimientoIngreso,
		Monto: dec("1"),
		Fecha: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC), // misma fecha, con hora
	}
	out := balance.SoloFuturos([]entity.MovimientoCaja{m}, time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC))
	assert.Len(t, out, 1, "la comparación trunca al día")
}
