package dto

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CounterpartyRequest entrada para crear o actualizar un proveedor o cliente.
type CounterpartyRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Note    string `json:"note"`
}

// CounterpartyResponse salida de un proveedor o cliente.
type CounterpartyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Note    string `json:"note"`
}

// CounterpartyListResponse lista paginada de proveedores o clientes.
type CounterpartyListResponse struct {
	Items []CounterpartyResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
