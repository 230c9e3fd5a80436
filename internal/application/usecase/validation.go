package usecase

import (
	"net/mail"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/pkg/taxid"
)

// normalizeTaxID valida y formatea un CUIT/CUIL opcional ("" se acepta tal cual).
func normalizeTaxID(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if err := taxid.Validate(s); err != nil {
		return "", domain.Invalid(field, err.Error())
	}
	return taxid.Normalize(s), nil
}

// normalizeEmail valida un email opcional y lo devuelve en minúsculas.
func normalizeEmail(field, s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "", domain.Invalid(field, "email inválido")
	}
	return s, nil
}

func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.Invalid(field, "obligatorio")
	}
	return s, nil
}
