package entity

import "time"

// Employee representa un empleado del tenant. Nunca se borra físicamente: los recibos
// históricos lo referencian (ver DeletionPolicy).
type Employee struct {
	ID           int64
	CUIL         string // identificación tributaria
	DocumentID   string // DNI
	Surname      string
	Name         string
	HireDate     time.Time
	CategoryID   *int64
	CategoryName string // solo lectura (join)
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName devuelve "Apellido, Nombre".
func (e *Employee) FullName() string {
	if e.Name == "" {
		return e.Surname
	}
	return e.Surname + ", " + e.Name
}
