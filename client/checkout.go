package client

import (
	"context"
	"errors"
	"net/http"
)

var (
	// ErrEmptyCart rejects checkout with nothing to order.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrAuthRequired suspends checkout until the user logs in; the
	// pending submission is kept and ResumeAfterLogin replays it.
	ErrAuthRequired = errors.New("login required to complete checkout")
	// ErrAdminCheckout abandons a resumed checkout because the
	// authenticated user is an administrator; the caller redirects to
	// the dashboard instead.
	ErrAdminCheckout = errors.New("administrators cannot place orders")
	// ErrNoPendingCheckout means ResumeAfterLogin was called without a
	// suspended submission.
	ErrNoPendingCheckout = errors.New("no pending checkout to resume")
)

// OrderItemRequest is one order line on the wire. Unit price is the
// client's cached price at submission time.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is the server's order record.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"user_id"`
	TotalPrice float64     `json:"total_price"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CheckoutResult is a placed order plus the products whose stock was
// reconciled afterwards.
type CheckoutResult struct {
	Order     *Order
	Refreshed []Product
}

// Checkout converts cart contents into one order-creation call and
// reconciles stock afterwards. A logged-out submission suspends and can
// be resumed after authentication.
type Checkout struct {
	client  *Client
	session *Session
	cart    *Cart

	pending     []OrderItemRequest
	LastOrderID string
}

func NewCheckout(c *Client, session *Session, cart *Cart) *Checkout {
	return &Checkout{client: c, session: session, cart: cart}
}

func itemsFromCart(cart *Cart) []OrderItemRequest {
	lines := cart.Items()
	items := make([]OrderItemRequest, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItemRequest{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
	}
	return items
}

// Submit places the order. With no logged-in user it makes no network
// call: the submission is kept pending and ErrAuthRequired returned so
// the caller can open the login prompt.
func (co *Checkout) Submit(ctx context.Context) (*CheckoutResult, error) {
	if co.cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if !co.session.LoggedIn() {
		co.pending = itemsFromCart(co.cart)
		return nil, ErrAuthRequired
	}
	// A direct submit supersedes any suspended one; dropping it here
	// keeps ResumeAfterLogin from replaying the same order.
	co.pending = nil
	return co.submit(ctx, itemsFromCart(co.cart))
}

// ResumeAfterLogin replays the suspended submission. If the
// authenticated user turns out to be an administrator the pending
// checkout is dropped and ErrAdminCheckout returned.
func (co *Checkout) ResumeAfterLogin(ctx context.Context) (*CheckoutResult, error) {
	if co.pending == nil {
		return nil, ErrNoPendingCheckout
	}
	if !co.session.LoggedIn() {
		return nil, ErrAuthRequired
	}
	if co.session.CurrentUser().IsAdmin() {
		co.pending = nil
		return nil, ErrAdminCheckout
	}
	items := co.pending
	co.pending = nil
	return co.submit(ctx, items)
}

func (co *Checkout) submit(ctx context.Context, items []OrderItemRequest) (*CheckoutResult, error) {
	user := co.session.CurrentUser()

	body := map[string][]OrderItemRequest{"items": items}
	var order Order
	err := co.client.do(ctx, http.MethodPost, "/api/v1/orders/user/"+user.ID, nil, body, &order)
	if err != nil {
		// Cart stays untouched; the server's message goes to the user
		// verbatim. No retry.
		return nil, err
	}

	co.cart.Clear()
	co.LastOrderID = order.ID

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	refreshed := co.client.RefreshStock(ctx, ids)

	return &CheckoutResult{Order: &order, Refreshed: refreshed}, nil
}
