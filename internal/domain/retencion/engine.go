package retencion

import "github.com/shopspring/decimal"

// TasaIVADefecto alícuota general de IVA usada para el desglose neto/IVA.
var TasaIVADefecto = decimal.RequireFromString("0.21")

var uno = decimal.NewFromInt(1)

// Resultado es el resultado del cálculo de retención para un comprobante.
type Resultado struct {
	Retencion decimal.Decimal
	Neto      decimal.Decimal
	IVA       decimal.Decimal
}

// NetoEIVA desglosa un importe bruto en neto e IVA con la alícuota general:
// neto = total / 1.21, IVA = total - neto, ambos redondeados al centavo.
func NetoEIVA(total decimal.Decimal) (neto, iva decimal.Decimal) {
	return NetoEIVAConTasa(total, TasaIVADefecto)
}

// NetoEIVAConTasa desglosa un importe bruto en neto e IVA con la tasa dada.
// Un total no positivo devuelve (0, 0).
func NetoEIVAConTasa(total, tasa decimal.Decimal) (neto, iva decimal.Decimal) {
	if total.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, decimal.Zero
	}
	neto = total.Div(uno.Add(tasa)).Round(2)
	iva = total.Sub(neto).Round(2)
	return neto, iva
}

// RetencionPorEscala calcula la retención por escala progresiva.
// Si el neto no supera el monto no sujeto la retención es cero. El monto
// sujeto (neto - monto no sujeto) cae en exactamente un tramo
// (Desde <= sujeto < Hasta); la retención es el fijo del tramo más la alícuota
// marginal sobre el excedente del tramo, redondeada al centavo.
// Si ningún tramo matchea (inalcanzable con el último tramo abierto) devuelve
// cero como salvaguarda.
func RetencionPorEscala(neto, montoNoSujeto decimal.Decimal, tramos []Tramo) decimal.Decimal {
	if neto.LessThanOrEqual(montoNoSujeto) {
		return decimal.Zero
	}
	sujeto := neto.Sub(montoNoSujeto)
	for _, t := range tramos {
		if sujeto.GreaterThanOrEqual(t.Desde) && (t.SinTope || sujeto.LessThan(t.Hasta)) {
			return t.Fijo.Add(sujeto.Sub(t.Desde).Mul(t.Alicuota)).Round(2)
		}
	}
	return decimal.Zero
}

// CalcularRetencion calcula neto, IVA y retención de Ganancias para un
// comprobante según el régimen RG 830.
//
// Reglas:
//   - Bruto no positivo: resultado todo en cero.
//   - Código de régimen desconocido: neto e IVA se calculan igual, retención
//     cero. Es la política deliberada "ante código no catalogado, no retener";
//     no debe convertirse en error sin un cambio de requerimiento explícito.
//   - Régimen con escala: la escala se aplica sea o no inscripto el proveedor
//     (regla de negocio modelada, no un descuido).
//   - Régimen plano: alícuota sobre el excedente del monto no sujeto, solo si
//     el neto lo supera.
//
// Determinista y puro: sin I/O, sin estado entre llamadas, nunca lanza.
func CalcularRetencion(codigoRegimen string, inscripto bool, bruto decimal.Decimal) Resultado {
	if bruto.LessThanOrEqual(decimal.Zero) {
		return Resultado{Retencion: decimal.Zero, Neto: decimal.Zero, IVA: decimal.Zero}
	}

	neto, iva := NetoEIVA(bruto)

	cat, ok := BuscarCategoria(codigoRegimen)
	if !ok {
		return Resultado{Retencion: decimal.Zero, Neto: neto, IVA: iva}
	}

	var ret decimal.Decimal
	switch {
	case cat.UsaEscala:
		ret = RetencionPorEscala(neto, cat.MontoNoSujeto, escala)
	case inscripto && cat.AlicuotaInscripto == nil:
		ret = decimal.Zero
	default:
		alicuota := cat.AlicuotaNoInscripto
		if inscripto {
			alicuota = *cat.AlicuotaInscripto
		}
		if neto.GreaterThan(cat.MontoNoSujeto) {
			ret = neto.Sub(cat.MontoNoSujeto).Mul(alicuota).Round(2)
		} else {
			ret = decimal.Zero
		}
	}

	return Resultado{Retencion: ret, Neto: neto, IVA: iva}
}
