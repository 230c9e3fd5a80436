package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/inventory"
)

func TestSignedDelta(t *testing.T) {
	assert.Equal(t, int64(5), inventory.SignedDelta(inventory.KindPurchase, 5))
	assert.Equal(t, int64(-3), inventory.SignedDelta(inventory.KindSale, 3))
}

func TestRebalanceDelta(t *testing.T) {
	// compra de 5 editada a 8: +3
	assert.Equal(t, int64(3), inventory.RebalanceDelta(inventory.KindPurchase, 5, 8))
	// compra de 8 editada a 2: -6
	assert.Equal(t, int64(-6), inventory.RebalanceDelta(inventory.KindPurchase, 8, 2))
	// venta de 3 editada a 7: -4 (salen 4 unidades más)
	assert.Equal(t, int64(-4), inventory.RebalanceDelta(inventory.KindSale, 3, 7))
	// venta de 7 editada a 3: +4
	assert.Equal(t, int64(4), inventory.RebalanceDelta(inventory.KindSale, 7, 3))
	assert.Zero(t, inventory.RebalanceDelta(inventory.KindSale, 4, 4))
}

func TestParseKind(t *testing.T) {
	k, err := inventory.ParseKind("sale")
	assert.NoError(t, err)
	assert.Equal(t, inventory.KindSale, k)

	_, err = inventory.ParseKind("transfer")
	assert.Error(t, err)
}
