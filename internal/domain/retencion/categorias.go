// Package retencion implementa el cálculo de retenciones del Impuesto a las
// Ganancias según RG 830 (AFIP): desglose neto/IVA del comprobante, alícuota
// plana sobre el excedente del monto no sujeto, o escala progresiva para los
// regímenes que la usan (honorarios, comisiones).
package retencion

import "github.com/shopspring/decimal"

// Categoria es una fila de la tabla de regímenes de retención RG 830.
// AlicuotaInscripto nil indica que el régimen no tiene alícuota plana para
// inscriptos: si UsaEscala es true se aplica la escala progresiva, si no la
// retención es cero.
type Categoria struct {
	Codigo              string
	Detalle             string
	AlicuotaInscripto   *decimal.Decimal
	AlicuotaNoInscripto decimal.Decimal
	MontoNoSujeto       decimal.Decimal
	UsaEscala           bool
}

// Tramo es un tramo de la escala progresiva (Anexo VIII RG 830). Los tramos
// son contiguos, ascendentes y el último es abierto (SinTope). Para cualquier
// monto sujeto no negativo matchea exactamente un tramo: Desde <= sujeto < Hasta.
type Tramo struct {
	Desde    decimal.Decimal
	Hasta    decimal.Decimal
	SinTope  bool // último tramo: sin límite superior
	Fijo     decimal.Decimal
	Alicuota decimal.Decimal
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// categorias es la tabla de regímenes, mantenida a mano y cargada una sola vez.
// Los códigos son los asignados por AFIP en la RG 830. Representarla como datos
// (y no como condicionales) permite tests dirigidos por tabla y actualizar
// alícuotas sin tocar la lógica de cálculo.
var categorias = []Categoria{
	{
		Codigo:              "19",
		Detalle:             "Intereses por operaciones realizadas en entidades financieras",
		AlicuotaInscripto:   decPtr("0.03"),
		AlicuotaNoInscripto: dec("0.10"),
		MontoNoSujeto:       dec("0"),
	},
	{
		Codigo:              "31",
		Detalle:             "Alquileres o arrendamientos de bienes inmuebles urbanos",
		AlicuotaInscripto:   decPtr("0.06"),
		AlicuotaNoInscripto: dec("0.28"),
		MontoNoSujeto:       dec("134400"),
	},
	{
		Codigo:              "78",
		Detalle:             "Locaciones de obra y/o servicios no ejecutados en relación de dependencia",
		AlicuotaInscripto:   decPtr("0.02"),
		AlicuotaNoInscripto: dec("0.28"),
		MontoNoSujeto:       dec("224000"),
	},
	{
		Codigo:              "94",
		Detalle:             "Enajenación de bienes muebles y bienes de cambio",
		AlicuotaInscripto:   decPtr("0.02"),
		AlicuotaNoInscripto: dec("0.10"),
		MontoNoSujeto:       dec("67170"),
	},
	{
		Codigo:              "25",
		Detalle:             "Comisiones u otras retribuciones derivadas de la actividad de comisionista",
		AlicuotaNoInscripto: dec("0.28"),
		MontoNoSujeto:       dec("67170"),
		UsaEscala:           true,
	},
	{
		Codigo:              "116",
		Detalle:             "Honorarios profesionales y retribuciones por el ejercicio de oficios",
		AlicuotaNoInscripto: dec("0.28"),
		MontoNoSujeto:       dec("67170"),
		UsaEscala:           true,
	},
}

// porCodigo índice de categorías por código de régimen.
var porCodigo = func() map[string]*Categoria {
	m := make(map[string]*Categoria, len(categorias))
	for i := range categorias {
		m[categorias[i].Codigo] = &categorias[i]
	}
	return m
}()

// escala es la escala progresiva del Anexo VIII (RG 830), aplicada sobre el
// monto sujeto (neto menos monto no sujeto). Tramos contiguos: el fijo de cada
// tramo es el acumulado exacto de los anteriores.
var escala = []Tramo{
	{Desde: dec("0"), Hasta: dec("8000"), Fijo: dec("0"), Alicuota: dec("0.05")},
	{Desde: dec("8000"), Hasta: dec("16000"), Fijo: dec("400"), Alicuota: dec("0.09")},
	{Desde: dec("16000"), Hasta: dec("24000"), Fijo: dec("1120"), Alicuota: dec("0.12")},
	{Desde: dec("24000"), Hasta: dec("32000"), Fijo: dec("2080"), Alicuota: dec("0.15")},
	{Desde: dec("32000"), Hasta: dec("48000"), Fijo: dec("3280"), Alicuota: dec("0.19")},
	{Desde: dec("48000"), Hasta: dec("64000"), Fijo: dec("6320"), Alicuota: dec("0.23")},
	{Desde: dec("64000"), Hasta: dec("96000"), Fijo: dec("10000"), Alicuota: dec("0.27")},
	{Desde: dec("96000"), SinTope: true, Fijo: dec("18640"), Alicuota: dec("0.31")},
}

// BuscarCategoria devuelve la categoría por código de régimen.
// Un código desconocido devuelve (nil, false), nunca un error: la política de
// cálculo ante código no catalogado es "sin retención", no un fallo.
func BuscarCategoria(codigo string) (*Categoria, bool) {
	c, ok := porCodigo[codigo]
	return c, ok
}

// Categorias devuelve la tabla completa (para listados en la UI).
func Categorias() []Categoria {
	out := make([]Categoria, len(categorias))
	copy(out, categorias)
	return out
}

// Escala devuelve la escala progresiva vigente.
func Escala() []Tramo {
	out := make([]Tramo, len(escala))
	copy(out, escala)
	return out
}
