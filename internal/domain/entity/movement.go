package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
)

// Movement es una compra (contraparte: proveedor) o una venta (contraparte: cliente).
// Su efecto sobre el stock es implícito: compra = +Quantity, venta = -Quantity.
type Movement struct {
	ID               int64
	Kind             inventory.Kind
	ProductID        int64
	ProductName      string // solo lectura (join)
	CounterpartyID   int64
	CounterpartyName string // solo lectura (join)
	Date             time.Time
	Quantity         int64
	Currency         string
	Amount           decimal.Decimal
	InvoiceNumber    string
	Note             string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// SignedQuantity devuelve el efecto del movimiento sobre el stock.
func (m *Movement) SignedQuantity() int64 {
	return inventory.SignedDelta(m.Kind, m.Quantity)
}
