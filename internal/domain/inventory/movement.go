package inventory

import "fmt"

// Kind es el tipo de movimiento de inventario.
type Kind string

const (
	KindPurchase Kind = "purchase" // compra: suma stock
	KindSale     Kind = "sale"     // venta: resta stock
)

// ParseKind valida el tipo de movimiento.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPurchase, KindSale:
		return Kind(s), nil
	}
	return "", fmt.Errorf("inventory: tipo de movimiento desconocido %q", s)
}

// Sign devuelve +1 para compras y -1 para ventas.
func (k Kind) Sign() int64 {
	if k == KindSale {
		return -1
	}
	return 1
}

// SignedDelta es el efecto de un movimiento de cantidad qty sobre el stock.
func SignedDelta(kind Kind, qty int64) int64 {
	return kind.Sign() * qty
}

// RebalanceDelta es el ajuste de stock al editar la cantidad de un movimiento existente.
// diff = newQty - oldQty; una compra suma diff y una venta lo resta.
func RebalanceDelta(kind Kind, oldQty, newQty int64) int64 {
	return SignedDelta(kind, newQty-oldQty)
}
