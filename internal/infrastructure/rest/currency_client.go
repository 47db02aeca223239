package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// CurrencyClient talks to the currency converter backend.
type CurrencyClient struct {
	base string
	c    *Client
}

var _ ports.CurrencyAPI = (*CurrencyClient)(nil)

// NewCurrencyClient returns a CurrencyClient rooted at base
// (e.g. http://localhost:8080/api/currency).
func NewCurrencyClient(base string, log zerolog.Logger) *CurrencyClient {
	return &CurrencyClient{base: strings.TrimRight(base, "/"), c: NewClient("currency", log)}
}

func (c *CurrencyClient) Health(ctx context.Context) error {
	return c.c.Do(ctx, http.MethodGet, c.base+"/health", "", nil, nil)
}

func (c *CurrencyClient) Rates(ctx context.Context, base string) (map[string]float64, error) {
	var resp struct {
		Rates map[string]float64 `json:"rates"`
	}
	u := c.base + "/rates?base=" + url.QueryEscape(base)
	if err := c.c.Do(ctx, http.MethodGet, u, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Rates, nil
}

func (c *CurrencyClient) Convert(ctx context.Context, from, to string, amount float64) (*domain.Conversion, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var conv domain.Conversion
	if err := c.c.Do(ctx, http.MethodGet, c.base+"/convert?"+q.Encode(), "", nil, &conv); err != nil {
		return nil, err
	}
	conv.Timestamp = time.Now()
	return &conv, nil
}
