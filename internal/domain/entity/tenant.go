package entity

import "time"

// Tenant representa una empresa cliente del sistema. Sus datos de negocio viven en su propio
// schema (SchemaName); el registro de tenants vive en el schema público.
type Tenant struct {
	ID         int64
	Name       string // nombre de fantasía
	LegalName  string // razón social
	TaxID      string // CUIT
	Address    string
	Phone      string
	Email      string
	SchemaName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
