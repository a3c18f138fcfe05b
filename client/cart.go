package client

import "errors"

// ErrOutOfStock is returned when an add or quantity change would push a
// line past the product's last-known stock. The cart is left unchanged;
// callers surface it as a notice, not a failure.
var ErrOutOfStock = errors.New("product is out of stock")

// CartItem is one line: a product snapshot plus a quantity. The
// snapshot's stock is the last value the client saw and may be stale
// until reconciliation.
type CartItem struct {
	Product  Product
	Quantity int
}

// Cart holds the ordered selection prior to order submission. It lives
// only in memory; every accessor returns a fresh snapshot so callers
// never share mutable state with the cart.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add inserts a new line at quantity 1 or increments the existing one.
// No-op with ErrOutOfStock when stock is zero or the line already sits
// at stock.
func (c *Cart) Add(p Product) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			if c.items[i].Quantity >= c.items[i].Product.Stock {
				return ErrOutOfStock
			}
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: 1})
	return nil
}

// SetQuantity replaces a line's quantity; zero removes the line.
// Quantities above the product's last-known stock are rejected.
func (c *Cart) SetQuantity(productID string, n int) error {
	if n < 0 {
		return errors.New("quantity cannot be negative")
	}
	if n == 0 {
		c.Remove(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			if n > c.items[i].Product.Stock {
				return ErrOutOfStock
			}
			c.items[i].Quantity = n
			return nil
		}
	}
	return errors.New("product not in cart")
}

// Remove deletes a line; unknown ids are ignored.
func (c *Cart) Remove(productID string) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Total is the sum of price×quantity over all lines, using the
// client's cached prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ProductIDs lists the ids currently in the cart, in line order.
func (c *Cart) ProductIDs() []string {
	ids := make([]string, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.Product.ID)
	}
	return ids
}
