package intake

import (
	"testing"

	"github.com/prabeth/vovos-pedidos-online/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return NewCatalog([]models.Product{
		{ID: "A", Name: "A", Price: 5.00},
		{ID: "B", Name: "B", Price: 3.00},
	})
}

func TestCartNeverStoresZeroOrNegative(t *testing.T) {
	cart := NewCart()

	ops := []struct {
		op string
		id string
	}{
		{"inc", "A"}, {"inc", "A"}, {"dec", "A"}, {"dec", "A"},
		{"dec", "A"}, // below zero: must be a no-op
		{"inc", "B"}, {"dec", "B"},
		{"dec", "C"}, // never selected
		{"inc", "A"},
	}
	for _, o := range ops {
		if o.op == "inc" {
			cart.Increment(o.id)
		} else {
			cart.Decrement(o.id)
		}
		for _, line := range cart.Lines() {
			assert.Greater(t, line.Quantity, 0, "quantity for %s after %s %s", line.ProductID, o.op, o.id)
		}
	}

	assert.Equal(t, 1, cart.Quantity("A"))
	assert.Equal(t, 0, cart.Quantity("B"))
	assert.Len(t, cart.Lines(), 1, "decremented-to-zero keys must be removed")
}

func TestCartDecrementRemovesKeyEntirely(t *testing.T) {
	cart := NewCart()
	cart.Increment("A")
	cart.Increment("B")
	cart.Decrement("A")

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, "B", cart.Lines()[0].ProductID)

	// Re-adding A puts it at the end of the iteration order.
	cart.Increment("A")
	assert.Equal(t, "B", cart.Lines()[0].ProductID)
	assert.Equal(t, "A", cart.Lines()[1].ProductID)
}

func TestCartTotalUsesCurrentCatalogSnapshot(t *testing.T) {
	cart := NewCart()
	cart.Increment("A")
	cart.Increment("A")
	cart.Increment("B")

	catalog := testCatalog()
	assert.InDelta(t, 13.00, cart.Total(catalog), 1e-9)

	// A price change after the items were added must be reflected.
	p := catalog["A"]
	p.Price = 7.00
	catalog["A"] = p
	assert.InDelta(t, 17.00, cart.Total(catalog), 1e-9)
}

func TestCartTotalUnknownProductContributesZero(t *testing.T) {
	cart := NewCart()
	cart.Increment("ghost")
	cart.Increment("A")

	assert.NotPanics(t, func() {
		assert.InDelta(t, 5.00, cart.Total(testCatalog()), 1e-9)
	})
}

func TestCartLinesPreserveInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Increment("B")
	cart.Increment("A")
	cart.Increment("B")

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, CartLine{ProductID: "B", Quantity: 2}, lines[0])
	assert.Equal(t, CartLine{ProductID: "A", Quantity: 1}, lines[1])
}

func TestCartReset(t *testing.T) {
	cart := NewCart()
	cart.Increment("A")
	cart.Reset()
	assert.True(t, cart.Empty())
	assert.Zero(t, cart.Total(testCatalog()))
}
