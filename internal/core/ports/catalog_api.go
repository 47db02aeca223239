package ports

import (
	"context"

	"github.com/learnstack/demo-console/internal/core/domain"
)

// ProductInput carries the writable fields of a product for create and
// update calls. ID and CreatedAt stay server-assigned.
type ProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category,omitempty"`
}

// CatalogAPI is the HTTP contract of the product catalog backend.
type CatalogAPI interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Search(ctx context.Context, name string) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error

	Count(ctx context.Context) (int64, error)
	InventoryValue(ctx context.Context) (float64, error)
	CategoryCount(ctx context.Context) (int64, error)
}
