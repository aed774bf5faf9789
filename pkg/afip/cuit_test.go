package afip_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pyme/pkg/afip"
)

// Vectores de CUIT con dígito verificador calculado con el módulo 11 de AFIP
// (pesos 5-4-3-2-7-6-5-4-3-2 sobre los 10 primeros dígitos).

func TestValidateCUIT_Validos(t *testing.T) {
	casos := []string{
		"30500000003",
		"30-50000000-3",
		"30.50000000.3",
		"20222222223",
		"20-22222222-3",
	}
	for _, cuit := range casos {
		assert.NoError(t, afip.ValidateCUIT(cuit), "CUIT %s debe ser válido", cuit)
	}
}

func TestValidateCUIT_DigitoIncorrecto(t *testing.T) {
	err := afip.ValidateCUIT("30-50000000-7")
	assert.Error(t, err, "dígito verificador incorrecto debe rechazarse")
}

func TestValidateCUIT_LongitudIncorrecta(t *testing.T) {
	assert.Error(t, afip.ValidateCUIT("3050000000"), "10 dígitos no alcanzan")
	assert.Error(t, afip.ValidateCUIT("305000000031"), "12 dígitos son demasiados")
	assert.Error(t, afip.ValidateCUIT(""), "vacío debe rechazarse")
}

func TestComputeCUITVerificationDigit(t *testing.T) {
	dv, err := afip.ComputeCUITVerificationDigit("3050000000")
	require.NoError(t, err)
	assert.Equal(t, byte('3'), dv)
}

func TestNormalizeCUIT(t *testing.T) {
	assert.Equal(t, "30500000003", afip.NormalizeCUIT("30-50000000-3"))
	assert.Equal(t, "30500000003", afip.NormalizeCUIT("30.50000000.3"))
}

// ── Comprobantes ──────────────────────────────────────────────────────────────

func TestTipoComprobanteCodigo(t *testing.T) {
	casos := map[string]string{
		"A000100001234": "001",
		"B000200000001": "006",
		"C001000000099": "011",
		"M000100000001": "112",
		"X000100000001": "099",
		"T000100000001": "081",
		"Z000100000001": "000", // letra desconocida: sin clasificar, no error
		"":              "000",
	}
	for ref, esperado := range casos {
		assert.Equal(t, esperado, afip.TipoComprobanteCodigo(ref), "referencia %q", ref)
	}
}

func TestParseComprobanteRef_Completa(t *testing.T) {
	ref, err := afip.ParseComprobanteRef("A000100001234")
	require.NoError(t, err)
	assert.Equal(t, "A", ref.Letra)
	assert.Equal(t, "0001", ref.PuntoVenta)
	assert.Equal(t, "00001234", ref.Numero)
	assert.Equal(t, "001", ref.TipoCodigo)
}

func TestParseComprobanteRef_Malformada(t *testing.T) {
	casos := []string{
		"",
		"A0001",          // falta el número
		"000100001234",   // falta la letra
		"A00010000123",   // número de 7 dígitos
		"AB00100001234",  // dos letras
		"a000100001234",  // minúscula
	}
	for _, ref := range casos {
		_, err := afip.ParseComprobanteRef(ref)
		assert.Error(t, err, "referencia %q debe ser inválida", ref)
	}
}

// ── Alícuotas ─────────────────────────────────────────────────────────────────

// El clasificador de alícuotas es de tres estados por igualdad exacta:
// cualquier tasa que no sea 0.105 ni 0.27 cae en el código general del 21%.
func TestAlicuotaCodigo(t *testing.T) {
	assert.Equal(t, "0005", afip.AlicuotaCodigo(decimal.RequireFromString("0.105")))
	assert.Equal(t, "0003", afip.AlicuotaCodigo(decimal.RequireFromString("0.27")))
	assert.Equal(t, "0004", afip.AlicuotaCodigo(decimal.RequireFromString("0.21")))
	assert.Equal(t, "0004", afip.AlicuotaCodigo(decimal.RequireFromString("0.2699")), "tasa cercana a 0.27 pero no exacta cae en el código general")
	assert.Equal(t, "0004", afip.AlicuotaCodigo(decimal.Zero))
}
