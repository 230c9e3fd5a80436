package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es una factura recibida registrada en facturación. No afecta al inventario.
type Invoice struct {
	ID            int64
	Date          time.Time
	Year          int // derivado de Date, para reportes
	ProviderID    int64
	ProviderName  string // solo lectura (join)
	InvoiceNumber string
	Description   string
	Amount        decimal.Decimal
	Currency      string
	CreatedAt     time.Time
}
