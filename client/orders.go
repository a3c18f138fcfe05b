package client

import (
	"context"
	"net/http"
	"net/url"
)

// UserOrders fetches a user's order history, newest first.
func (c *Client) UserOrders(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/user/"+userID, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order with its items.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+orderID, nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus sets an order's status. Admin action.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID, status string) (*Order, error) {
	var order Order
	query := url.Values{"status": []string{status}}
	if err := c.do(ctx, http.MethodPut, "/api/v1/orders/"+orderID+"/status", query, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}