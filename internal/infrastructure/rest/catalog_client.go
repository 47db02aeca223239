package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// CatalogClient talks to the product catalog backend.
type CatalogClient struct {
	base string
	c    *Client
}

var _ ports.CatalogAPI = (*CatalogClient)(nil)

// NewCatalogClient returns a CatalogClient rooted at base
// (e.g. http://localhost:8080). Paths are relative to /api/products.
func NewCatalogClient(base string, log zerolog.Logger) *CatalogClient {
	return &CatalogClient{base: strings.TrimRight(base, "/") + "/api/products", c: NewClient("catalog", log)}
}

func (c *CatalogClient) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.c.Do(ctx, http.MethodGet, c.base, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogClient) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.c.Do(ctx, http.MethodGet, c.itemURL(id), "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CatalogClient) Search(ctx context.Context, name string) ([]domain.Product, error) {
	var products []domain.Product
	u := c.base + "/search?name=" + url.QueryEscape(name)
	if err := c.c.Do(ctx, http.MethodGet, u, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogClient) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var products []domain.Product
	u := c.base + "/category/" + url.PathEscape(category)
	if err := c.c.Do(ctx, http.MethodGet, u, "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogClient) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.c.Do(ctx, http.MethodPost, c.base, "", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CatalogClient) Update(ctx context.Context, id int64, input ports.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := c.c.Do(ctx, http.MethodPut, c.itemURL(id), "", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CatalogClient) Delete(ctx context.Context, id int64) error {
	return c.c.Do(ctx, http.MethodDelete, c.itemURL(id), "", nil, nil)
}

func (c *CatalogClient) Count(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := c.c.Do(ctx, http.MethodGet, c.base+"/count", "", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *CatalogClient) InventoryValue(ctx context.Context) (float64, error) {
	var resp struct {
		InventoryValue float64 `json:"inventoryValue"`
	}
	if err := c.c.Do(ctx, http.MethodGet, c.base+"/inventory/value", "", nil, &resp); err != nil {
		return 0, err
	}
	return resp.InventoryValue, nil
}

func (c *CatalogClient) CategoryCount(ctx context.Context) (int64, error) {
	var resp struct {
		Count int64 `json:"count"`
	}
	if err := c.c.Do(ctx, http.MethodGet, c.base+"/categories/count", "", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *CatalogClient) itemURL(id int64) string {
	return c.base + "/" + strconv.FormatInt(id, 10)
}
