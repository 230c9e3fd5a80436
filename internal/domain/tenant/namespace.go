// Package tenant define la identidad de tenant que acompaña a cada petición:
// el namespace (schema PostgreSQL) y el rol del operador.
package tenant

import (
	"fmt"
	"regexp"
)

var namespacePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// schemas del sistema que nunca pueden ser namespace de un tenant.
var reservedNamespaces = map[string]struct{}{
	"public":             {},
	"information_schema": {},
	"pg_catalog":         {},
	"pg_toast":           {},
}

// Namespace es el schema que contiene las tablas de negocio de un tenant.
// Solo se construye con NewNamespace a partir del registro de tenants del servidor;
// el valor cero es inválido y el executor lo rechaza.
type Namespace struct {
	name string
}

// NewNamespace valida el identificador contra la lista permitida de formato.
func NewNamespace(name string) (Namespace, error) {
	if !namespacePattern.MatchString(name) {
		return Namespace{}, fmt.Errorf("tenant: namespace con formato inválido")
	}
	if _, reserved := reservedNamespaces[name]; reserved {
		return Namespace{}, fmt.Errorf("tenant: namespace reservado")
	}
	return Namespace{name: name}, nil
}

// String devuelve el nombre del schema.
func (n Namespace) String() string { return n.name }

// IsZero informa si el namespace no fue resuelto.
func (n Namespace) IsZero() bool { return n.name == "" }
