package afip

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito verificador del CUIT (módulo 11, AFIP).
// Se aplican a los 10 primeros dígitos del CUIT, de izquierda a derecha.
var cuitWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidateCUIT valida que el CUIT (con o sin guiones/puntos) tenga 11 dígitos
// y un dígito verificador correcto según el algoritmo módulo 11 de AFIP.
// cuit puede ser "30-50000000-3", "30.50000000.3" o "30500000003".
func ValidateCUIT(cuit string) error {
	digits := extractDigits(cuit)
	if len(digits) != 11 {
		return fmt.Errorf("afip: CUIT debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	expected, err := verificationDigit(digits[:10])
	if err != nil {
		return err
	}
	if digits[10] != expected {
		return fmt.Errorf("afip: dígito verificador del CUIT inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// ComputeCUITVerificationDigit calcula el dígito verificador para los 10 primeros dígitos del CUIT.
func ComputeCUITVerificationDigit(cuit string) (byte, error) {
	digits := extractDigits(cuit)
	if len(digits) < 10 {
		return 0, fmt.Errorf("afip: se requieren al menos 10 dígitos para calcular el dígito verificador, se encontraron %d", len(digits))
	}
	return verificationDigit(digits[:10])
}

// NormalizeCUIT deja solo los 11 dígitos del CUIT (sin guiones ni puntos).
// No valida el dígito verificador.
func NormalizeCUIT(cuit string) string {
	return string(extractDigits(cuit))
}

func verificationDigit(base []byte) (byte, error) {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * cuitWeights[i]
	}
	switch dv := 11 - sum%11; dv {
	case 11:
		return '0', nil
	case 10:
		// AFIP no asigna CUITs cuyo cálculo da 10; el prefijo de tipo cambia en su lugar.
		return 0, fmt.Errorf("afip: la base no admite dígito verificador (resto 1)")
	default:
		return byte('0' + dv), nil
	}
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
