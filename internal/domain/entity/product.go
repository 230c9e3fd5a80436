package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario del tenant.
// Stock solo cambia vía el ledger de inventario; InitialStock se fija al crear.
type Product struct {
	ID           int64
	Name         string
	CategoryID   *int64
	CategoryName string // solo lectura (join)
	Currency     string
	UnitPrice    decimal.Decimal
	InitialStock int64
	Stock        int64
	Active       bool
	Note         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
