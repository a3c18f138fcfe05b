package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64, stock int) Product {
	return Product{ID: id, Name: "product-" + id, Price: price, Stock: stock}
}

func TestCartAdd(t *testing.T) {
	t.Run("new line starts at quantity 1", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.Add(product("p1", 10, 5)))

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("existing line increments", func(t *testing.T) {
		cart := NewCart()
		p := product("p1", 10, 5)
		require.NoError(t, cart.Add(p))
		require.NoError(t, cart.Add(p))

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("zero stock is a no-op", func(t *testing.T) {
		cart := NewCart()
		err := cart.Add(product("p1", 10, 0))
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("line at stock cap is a no-op", func(t *testing.T) {
		cart := NewCart()
		p := product("p1", 10, 2)
		require.NoError(t, cart.Add(p))
		require.NoError(t, cart.Add(p))

		err := cart.Add(p)
		assert.ErrorIs(t, err, ErrOutOfStock)

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity, "cart must be unchanged")
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.Add(product("p1", 10, 5)))

		require.NoError(t, cart.SetQuantity("p1", 0))
		assert.True(t, cart.IsEmpty())
	})

	t.Run("replaces quantity", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.Add(product("p1", 10, 5)))

		require.NoError(t, cart.SetQuantity("p1", 4))
		assert.Equal(t, 4, cart.Items()[0].Quantity)
	})

	t.Run("above stock rejected", func(t *testing.T) {
		cart := NewCart()
		require.NoError(t, cart.Add(product("p1", 10, 3)))

		err := cart.SetQuantity("p1", 4)
		assert.ErrorIs(t, err, ErrOutOfStock)
		assert.Equal(t, 1, cart.Items()[0].Quantity)
	})

	t.Run("unknown product errors", func(t *testing.T) {
		cart := NewCart()
		assert.Error(t, cart.SetQuantity("nope", 1))
	})
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(product("p1", 10, 5)))
	require.NoError(t, cart.Add(product("p2", 5, 5)))

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Items())

	// Clearing an empty cart is fine too.
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartTotal(t *testing.T) {
	cart := NewCart()
	p1 := product("p1", 10, 10)
	p2 := product("p2", 5, 10)
	require.NoError(t, cart.Add(p1))
	require.NoError(t, cart.SetQuantity("p1", 2))
	require.NoError(t, cart.Add(p2))

	assert.InDelta(t, 25.0, cart.Total(), 0.001)
	assert.Equal(t, []string{"p1", "p2"}, cart.ProductIDs())
}

func TestCartSnapshotIsolation(t *testing.T) {
	cart := NewCart()
	require.NoError(t, cart.Add(product("p1", 10, 5)))

	snapshot := cart.Items()
	snapshot[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity, "mutating a snapshot must not touch the cart")
}
