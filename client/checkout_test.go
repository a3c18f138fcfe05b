package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend is a minimal storefront server for checkout tests.
type fakeBackend struct {
	mu           sync.Mutex
	orderCalls   int
	orderBodies  []map[string][]OrderItemRequest
	refreshedIDs []string

	orderStatus int
	orderError  string
	loginRole   string
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/orders/user/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.orderCalls++
		var body map[string][]OrderItemRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.orderBodies = append(f.orderBodies, body)
		status, errMsg := f.orderStatus, f.orderError
		f.mu.Unlock()

		if status != 0 && status != http.StatusCreated {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": errMsg})
			return
		}

		var total float64
		for _, item := range body["items"] {
			total += item.UnitPrice * float64(item.Quantity)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Order{ID: "order-1", UserID: "u1", TotalPrice: total, Status: "pending"})
	})

	mux.HandleFunc("GET /api/v1/products/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/products/")
		f.mu.Lock()
		f.refreshedIDs = append(f.refreshedIDs, id)
		f.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": id, "name": "p", "price": 1.0, "stock": 7})
	})

	mux.HandleFunc("POST /api/v1/users/login", func(w http.ResponseWriter, r *http.Request) {
		role := f.loginRole
		if role == "" {
			role = "user"
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "u1", "name": "Test", "email": "t@example.com", "role": role, "token": "tok",
		})
	})

	return mux
}

func newCheckoutFixture(t *testing.T, backend *fakeBackend) (*Checkout, *Session, *Cart) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	c := New(srv.URL, logrus.New())
	session := NewSession(c, t.TempDir())
	cart := NewCart()
	return NewCheckout(c, session, cart), session, cart
}

func fillCart(t *testing.T, cart *Cart) {
	t.Helper()
	require.NoError(t, cart.Add(product("p1", 10, 5)))
	require.NoError(t, cart.SetQuantity("p1", 2))
	require.NoError(t, cart.Add(product("p2", 5, 5)))
}

func TestCheckoutSuccess(t *testing.T) {
	backend := &fakeBackend{}
	checkout, session, cart := newCheckoutFixture(t, backend)
	_, err := session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)
	fillCart(t, cart)

	result, err := checkout.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result.Order)

	assert.Equal(t, "order-1", result.Order.ID)
	assert.Equal(t, "order-1", checkout.LastOrderID)
	assert.InDelta(t, 25.0, result.Order.TotalPrice, 0.001)
	assert.True(t, cart.IsEmpty(), "cart must be empty after a successful order")

	// Exact wire shape of the submitted items.
	require.Len(t, backend.orderBodies, 1)
	assert.Equal(t, []OrderItemRequest{
		{ProductID: "p1", Quantity: 2, UnitPrice: 10},
		{ProductID: "p2", Quantity: 1, UnitPrice: 5},
	}, backend.orderBodies[0]["items"])

	// Every ordered product id was reconciled.
	sort.Strings(backend.refreshedIDs)
	assert.Equal(t, []string{"p1", "p2"}, backend.refreshedIDs)
	assert.Len(t, result.Refreshed, 2)
}

func TestCheckoutServerFailureLeavesCart(t *testing.T) {
	backend := &fakeBackend{orderStatus: http.StatusBadRequest, orderError: "insufficient stock for product: p1"}
	checkout, session, cart := newCheckoutFixture(t, backend)
	_, err := session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)
	fillCart(t, cart)

	_, err = checkout.Submit(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient stock for product: p1", apiErr.Message)

	assert.Equal(t, 2, cart.Len(), "failed checkout must leave the cart untouched")
	assert.Empty(t, backend.refreshedIDs, "no reconciliation on failure")
	assert.Equal(t, 1, backend.orderCalls, "no retry")
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, _, _ := newCheckoutFixture(t, &fakeBackend{})
	_, err := checkout.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutSuspendsUntilLogin(t *testing.T) {
	backend := &fakeBackend{}
	checkout, session, cart := newCheckoutFixture(t, backend)
	fillCart(t, cart)

	_, err := checkout.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.Zero(t, backend.orderCalls, "order creation must not run before a user id exists")

	_, err = session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)

	result, err := checkout.ResumeAfterLogin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order-1", result.Order.ID)
	assert.Equal(t, 1, backend.orderCalls)
	assert.True(t, cart.IsEmpty())
}

func TestCheckoutDirectSubmitDropsSuspended(t *testing.T) {
	backend := &fakeBackend{}
	checkout, session, cart := newCheckoutFixture(t, backend)
	fillCart(t, cart)

	_, err := checkout.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)

	// The user submits again directly instead of resuming.
	result, err := checkout.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "order-1", result.Order.ID)
	assert.Equal(t, 1, backend.orderCalls)

	// The suspended submission was superseded; resuming must not place
	// the order a second time.
	_, err = checkout.ResumeAfterLogin(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingCheckout)
	assert.Equal(t, 1, backend.orderCalls, "order must not be placed twice")
}

func TestCheckoutAbandonedForAdmin(t *testing.T) {
	backend := &fakeBackend{loginRole: "admin"}
	checkout, session, cart := newCheckoutFixture(t, backend)
	fillCart(t, cart)

	_, err := checkout.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = session.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	_, err = checkout.ResumeAfterLogin(context.Background())
	assert.ErrorIs(t, err, ErrAdminCheckout)
	assert.Zero(t, backend.orderCalls, "admin checkout is abandoned, not submitted")
	assert.Equal(t, 2, cart.Len())

	// The pending submission was dropped with it.
	_, err = checkout.ResumeAfterLogin(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingCheckout)
}
