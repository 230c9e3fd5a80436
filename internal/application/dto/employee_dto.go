package dto

import "time"

// EmployeeRequest entrada para crear o actualizar un empleado.
type EmployeeRequest struct {
	CUIL       string `json:"cuil"`
	DocumentID string `json:"document_id"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	HireDate   string `json:"hire_date"`
	CategoryID *int64 `json:"category_id"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID           int64     `json:"id"`
	CUIL         string    `json:"cuil"`
	DocumentID   string    `json:"document_id"`
	Surname      string    `json:"surname"`
	Name         string    `json:"name"`
	FullName     string    `json:"full_name"`
	HireDate     string    `json:"hire_date"`
	CategoryID   *int64    `json:"category_id"`
	CategoryName string    `json:"category_name"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
