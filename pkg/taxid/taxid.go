// Package taxid valida identificaciones tributarias CUIT/CUIL (11 dígitos, módulo 11).
package taxid

import (
	"fmt"
	"unicode"
)

// pesos aplicados a los 10 primeros dígitos, de izquierda a derecha.
var weights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// Validate verifica que taxID (con o sin guiones/puntos) tenga 11 dígitos y dígito verificador correcto.
// Acepta "20-12345678-6", "20.12345678.6" o "20123456786".
func Validate(taxID string) error {
	digits := extractDigits(taxID)
	if len(digits) != 11 {
		return fmt.Errorf("taxid: se esperaban 11 dígitos, se encontraron %d", len(digits))
	}
	expected, err := CheckDigit(string(digits[:10]))
	if err != nil {
		return err
	}
	if digits[10] != expected {
		return fmt.Errorf("taxid: dígito verificador inválido: esperado %c, recibido %c", expected, digits[10])
	}
	return nil
}

// CheckDigit calcula el dígito verificador para los 10 primeros dígitos.
// Cuando el resultado sería 10 no existe dígito válido y devuelve error.
func CheckDigit(prefix string) (byte, error) {
	digits := extractDigits(prefix)
	if len(digits) != 10 {
		return 0, fmt.Errorf("taxid: se requieren 10 dígitos, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * weights[i]
	}
	switch v := 11 - sum%11; v {
	case 11:
		return '0', nil
	case 10:
		return 0, fmt.Errorf("taxid: prefijo %s sin dígito verificador posible", string(digits))
	default:
		return byte('0' + v), nil
	}
}

// Normalize devuelve el formato XX-XXXXXXXX-X. No valida el dígito verificador.
func Normalize(taxID string) string {
	d := extractDigits(taxID)
	if len(d) != 11 {
		return taxID
	}
	return string(d[:2]) + "-" + string(d[2:10]) + "-" + string(d[10:])
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
