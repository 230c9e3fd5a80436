package entity

// Category agrupa productos o empleados (categoría de convenio).
type Category struct {
	ID          int64
	Name        string
	Description string
}
