package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Product is the UI-facing product shape, normalized from the wire
// payload at the edge.
type Product struct {
	ID            string
	Name          string
	Brand         string
	Description   string
	Price         float64
	Stock         int
	Category      string
	Rating        float64
	Reviews       int
	Image         string
	OriginalPrice *float64
	IsNew         bool
	IsOnSale      bool
}

// productPayload is the backend's field naming.
type productPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Stock         int      `json:"stock"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	ImageURL      string   `json:"image_url"`
	OriginalPrice *float64 `json:"original_price"`
	IsNew         bool     `json:"is_new"`
	IsOnSale      bool     `json:"is_on_sale"`
}

func (p productPayload) toProduct() Product {
	return Product{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Description:   p.Description,
		Price:         p.Price,
		Stock:         p.Stock,
		Category:      p.Category,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Image:         p.ImageURL,
		OriginalPrice: p.OriginalPrice,
		IsNew:         p.IsNew,
		IsOnSale:      p.IsOnSale,
	}
}

// ListOptions filter and paginate the catalog listing. Nil booleans
// leave the corresponding filter unset.
type ListOptions struct {
	Page     int
	Limit    int
	Category string
	Search   string
	OnSale   *bool
	New      *bool
}

// ProductList is one catalog page.
type ProductList struct {
	Products []Product
	Total    int64
	Page     int
	Limit    int
}

// ListProducts fetches one filtered catalog page. On a connectivity
// failure the returned list is empty and the error wraps ErrOffline,
// so the UI can show a distinct offline state.
func (c *Client) ListProducts(ctx context.Context, opts ListOptions) (ProductList, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.OnSale != nil {
		query.Set("is_on_sale", strconv.FormatBool(*opts.OnSale))
	}
	if opts.New != nil {
		query.Set("is_new", strconv.FormatBool(*opts.New))
	}

	var payload struct {
		Products []productPayload `json:"products"`
		Total    int64            `json:"total"`
		Page     int              `json:"page"`
		Limit    int              `json:"limit"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/products", query, nil, &payload); err != nil {
		return ProductList{Products: []Product{}}, err
	}

	products := make([]Product, 0, len(payload.Products))
	for _, p := range payload.Products {
		products = append(products, p.toProduct())
	}
	return ProductList{
		Products: products,
		Total:    payload.Total,
		Page:     payload.Page,
		Limit:    payload.Limit,
	}, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var payload productPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/"+id, nil, nil, &payload); err != nil {
		return nil, err
	}
	product := payload.toProduct()
	return &product, nil
}

// FeaturedProducts fetches the featured selection. Callers treat this
// as a secondary read: failures are logged by the caller, not surfaced.
func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var payload []productPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/featured", query, nil, &payload); err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, p.toProduct())
	}
	return products, nil
}

// Categories fetches the distinct category names.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/v1/products/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
