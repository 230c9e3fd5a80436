package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceRequest entrada para registrar una factura recibida.
type InvoiceRequest struct {
	Date          string          `json:"date"`
	ProviderID    int64           `json:"provider_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
}

// InvoiceFilterRequest query de listado de facturas.
type InvoiceFilterRequest struct {
	PageRequest
	Year       int   `query:"year"`
	ProviderID int64 `query:"provider_id"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            int64           `json:"id"`
	Date          string          `json:"date"`
	Year          int             `json:"year"`
	ProviderID    int64           `json:"provider_id"`
	ProviderName  string          `json:"provider_name"`
	InvoiceNumber string          `json:"invoice_number"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// InvoiceYearSummary total facturado por año y moneda.
type InvoiceYearSummary struct {
	Year     int             `json:"year"`
	Currency string          `json:"currency"`
	Count    int64           `json:"count"`
	Total    decimal.Decimal `json:"total"`
}
