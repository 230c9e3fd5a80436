package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. InitialStock fija también el stock actual.
type CreateProductRequest struct {
	Name         string          `json:"name"`
	CategoryID   *int64          `json:"category_id"`
	Currency     string          `json:"currency"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	InitialStock int64           `json:"initial_stock"`
	Note         string          `json:"note"`
}

// UpdateProductRequest entrada para actualizar un producto (sin stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name       *string          `json:"name"`
	CategoryID *int64           `json:"category_id"`
	Currency   *string          `json:"currency"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
	Active     *bool            `json:"active"`
	Note       *string          `json:"note"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Currency     string          `json:"currency"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	InitialStock int64           `json:"initial_stock"`
	Stock        int64           `json:"stock"`
	Active       bool            `json:"active"`
	Note         string          `json:"note"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
