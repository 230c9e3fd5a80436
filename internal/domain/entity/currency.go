package entity

import "strings"

// DefaultCurrency moneda asumida cuando no se informa.
const DefaultCurrency = "ARS"

// NormalizeCurrency devuelve el código ISO 4217 en mayúsculas. ok es false si no tiene 3 letras.
func NormalizeCurrency(s string) (code string, ok bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return DefaultCurrency, true
	}
	if len(s) != 3 {
		return "", false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return s, true
}
