package ports

import (
	"context"

	"github.com/learnstack/demo-console/internal/core/domain"
)

// CurrencyAPI is the HTTP contract of the currency converter backend.
type CurrencyAPI interface {
	Health(ctx context.Context) error
	// Rates returns the rate table for the given base currency.
	Rates(ctx context.Context, base string) (map[string]float64, error)
	Convert(ctx context.Context, from, to string, amount float64) (*domain.Conversion, error)
}
