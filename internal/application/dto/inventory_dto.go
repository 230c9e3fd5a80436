package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body para crear o editar una compra (counterparty = proveedor) o venta (cliente).
type MovementRequest struct {
	ProductID      int64           `json:"product_id"`
	CounterpartyID int64           `json:"counterparty_id"`
	Date           string          `json:"date"`
	Quantity       int64           `json:"quantity"`
	Currency       string          `json:"currency"`
	Amount         decimal.Decimal `json:"amount"`
	InvoiceNumber  string          `json:"invoice_number"`
	Note           string          `json:"note"`
}

// MovementFilterRequest query de listado de movimientos.
type MovementFilterRequest struct {
	PageRequest
	ProductID      int64  `query:"product_id"`
	CounterpartyID int64  `query:"counterparty_id"`
	From           string `query:"from"`
	To             string `query:"to"`
}

// MovementResponse salida de un movimiento. Stock es el stock del producto tras la operación
// (solo en create/update).
type MovementResponse struct {
	ID               int64           `json:"id"`
	Kind             string          `json:"kind"`
	ProductID        int64           `json:"product_id"`
	ProductName      string          `json:"product_name"`
	CounterpartyID   int64           `json:"counterparty_id"`
	CounterpartyName string          `json:"counterparty_name"`
	Date             string          `json:"date"`
	Quantity         int64           `json:"quantity"`
	Currency         string          `json:"currency"`
	Amount           decimal.Decimal `json:"amount"`
	InvoiceNumber    string          `json:"invoice_number"`
	Note             string          `json:"note"`
	Stock            *int64          `json:"stock,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockAuditResponse conciliación de stock de un producto.
type StockAuditResponse struct {
	ProductID     int64 `json:"product_id"`
	InitialStock  int64 `json:"initial_stock"`
	Purchased     int64 `json:"purchased"`
	Sold          int64 `json:"sold"`
	ExpectedStock int64 `json:"expected_stock"`
	ActualStock   int64 `json:"actual_stock"`
	Consistent    bool  `json:"consistent"`
}
