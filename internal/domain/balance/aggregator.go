// Package balance implementa las agregaciones del libro de caja: saldo
// acumulado por movimiento y proyección mensual de ingresos/egresos. Son
// cómputos puros sobre listas ya cargadas en memoria; se recalculan completos
// ante cada cambio, nunca se mantienen incrementalmente.
package balance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/gestion-pyme/internal/domain/entity"
)

// HorizonteDefecto cantidad de meses futuros proyectados por defecto.
const HorizonteDefecto = 6

// MovimientoConSaldo es un movimiento anotado con el saldo acumulado a esa fila.
type MovimientoConSaldo struct {
	entity.MovimientoCaja
	Saldo decimal.Decimal
}

// ProyeccionMes es la proyección de un mes calendario: ingresos, egresos,
// variación neta y saldo de cierre encadenado desde el mes más antiguo.
// Derivada siempre, nunca persistida.
type ProyeccionMes struct {
	Mes         string // "YYYY-MM"
	Etiqueta    string // "enero 2024"
	Ingresos    decimal.Decimal
	Egresos     decimal.Decimal
	Variacion   decimal.Decimal
	SaldoCierre decimal.Decimal
}

// MontoConSigno devuelve el monto con signo según el tipo de movimiento:
// positivo para INGRESO, negativo para EGRESO.
func MontoConSigno(m entity.MovimientoCaja) decimal.Decimal {
	if m.Tipo == entity.MovimientoIngreso {
		return m.Monto
	}
	return m.Monto.Neg()
}

// descartarSinFecha filtra movimientos sin fecha (dato malformado en origen).
// Política de ingestión tolerante: una fila defectuosa se excluye del cómputo
// en silencio en lugar de abortar el render de toda la página.
func descartarSinFecha(movimientos []entity.MovimientoCaja) []entity.MovimientoCaja {
	out := make([]entity.MovimientoCaja, 0, len(movimientos))
	for _, m := range movimientos {
		if m.Fecha.IsZero() {
			continue
		}
		out = append(out, m)
	}
	return out
}

// SaldosAcumulados ordena los movimientos por fecha ascendente (orden estable
// entre fechas iguales) y anota cada uno con el saldo acumulado: suma de
// prefijos de los montos con signo, partiendo de cero.
func SaldosAcumulados(movimientos []entity.MovimientoCaja) []MovimientoConSaldo {
	ordenados := descartarSinFecha(movimientos)
	sort.SliceStable(ordenados, func(i, j int) bool {
		return ordenados[i].Fecha.Before(ordenados[j].Fecha)
	})

	out := make([]MovimientoConSaldo, 0, len(ordenados))
	saldo := decimal.Zero
	for _, m := range ordenados {
		saldo = saldo.Add(MontoConSigno(m))
		out = append(out, MovimientoConSaldo{MovimientoCaja: m, Saldo: saldo})
	}
	return out
}

var nombresMes = [12]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func etiquetaMes(t time.Time) string {
	return nombresMes[t.Month()-1] + " " + t.Format("2006")
}

// ProyeccionMensual agrupa los movimientos por mes calendario y encadena el
// saldo de cierre desde cero en el mes más antiguo observado. A continuación
// agrega hasta horizonteMeses meses futuros sin actividad con el saldo
// arrastrado: es una proyección pura, sin estacionalidad ni tendencia.
func ProyeccionMensual(movimientos []entity.MovimientoCaja, horizonteMeses int) []ProyeccionMes {
	validos := descartarSinFecha(movimientos)
	if len(validos) == 0 {
		return nil
	}
	if horizonteMeses < 0 {
		horizonteMeses = 0
	}

	type acumulado struct {
		ingresos decimal.Decimal
		egresos  decimal.Decimal
	}
	porMes := make(map[string]*acumulado)
	var meses []time.Time
	for _, m := range validos {
		clave := m.Fecha.Format("2006-01")
		a, ok := porMes[clave]
		if !ok {
			a = &acumulado{ingresos: decimal.Zero, egresos: decimal.Zero}
			porMes[clave] = a
			meses = append(meses, time.Date(m.Fecha.Year(), m.Fecha.Month(), 1, 0, 0, 0, 0, time.UTC))
		}
		if m.Tipo == entity.MovimientoIngreso {
			a.ingresos = a.ingresos.Add(m.Monto)
		} else {
			a.egresos = a.egresos.Add(m.Monto)
		}
	}
	sort.Slice(meses, func(i, j int) bool { return meses[i].Before(meses[j]) })

	out := make([]ProyeccionMes, 0, len(meses)+horizonteMeses)
	saldo := decimal.Zero
	for _, mes := range meses {
		a := porMes[mes.Format("2006-01")]
		variacion := a.ingresos.Sub(a.egresos)
		saldo = saldo.Add(variacion)
		out = append(out, ProyeccionMes{
			Mes:         mes.Format("2006-01"),
			Etiqueta:    etiquetaMes(mes),
			Ingresos:    a.ingresos,
			Egresos:     a.egresos,
			Variacion:   variacion,
			SaldoCierre: saldo,
		})
	}

	// Meses futuros: sin actividad, saldo arrastrado del último mes observado.
	ultimo := meses[len(meses)-1]
	for i := 1; i <= horizonteMeses; i++ {
		mes := ultimo.AddDate(0, i, 0)
		out = append(out, ProyeccionMes{
			Mes:         mes.Format("2006-01"),
			Etiqueta:    etiquetaMes(mes),
			Ingresos:    decimal.Zero,
			Egresos:     decimal.Zero,
			Variacion:   decimal.Zero,
			SaldoCierre: saldo,
		})
	}
	return out
}

// SoloFuturos retiene los movimientos cuya fecha de impacto (FechaEfectiva si
// existe, si no Fecha) es igual o posterior a la fecha de referencia, con
// granularidad de día. Filtro puro, sin efectos.
func SoloFuturos(movimientos []entity.MovimientoCaja, referencia time.Time) []entity.MovimientoCaja {
	corte := time.Date(referencia.Year(), referencia.Month(), referencia.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]entity.MovimientoCaja, 0, len(movimientos))
	for _, m := range movimientos {
		if m.Fecha.IsZero() {
			continue
		}
		f := m.FechaImpacto()
		dia := time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, time.UTC)
		if !dia.Before(corte) {
			out = append(out, m)
		}
	}
	return out
}
