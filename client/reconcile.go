package client

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RefreshStock re-fetches the given products concurrently so cached
// stock matches the database again, and returns the subset that
// resolved. A failed refresh for one product is logged and skipped,
// never surfaced; no ordering is guaranteed across products.
func (c *Client) RefreshStock(ctx context.Context, productIDs []string) []Product {
	var (
		mu        sync.Mutex
		refreshed []Product
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range productIDs {
		g.Go(func() error {
			product, err := c.GetProduct(ctx, id)
			if err != nil {
				c.log.WithError(err).WithField("product_id", id).Warn("stock refresh skipped")
				return nil
			}
			mu.Lock()
			refreshed = append(refreshed, *product)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return refreshed
}
