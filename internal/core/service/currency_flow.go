package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
	"github.com/learnstack/demo-console/internal/metrics"
)

// Pair is a quick-conversion preset.
type Pair struct {
	From string
	To   string
}

// QuickPairs are the popular presets offered by the converter.
var QuickPairs = []Pair{
	{"USD", "EUR"},
	{"EUR", "GBP"},
	{"USD", "JPY"},
	{"GBP", "USD"},
	{"AUD", "USD"},
	{"USD", "CAD"},
}

// CurrencyFlow orchestrates the converter console. It remembers the last
// selection so swap and quick presets re-convert with the previous amount.
type CurrencyFlow struct {
	api  ports.CurrencyAPI
	view ports.CurrencyView
	log  zerolog.Logger

	currencies []string
	lastAmount float64
	lastFrom   string
	lastTo     string
}

func NewCurrencyFlow(api ports.CurrencyAPI, view ports.CurrencyView, log zerolog.Logger) *CurrencyFlow {
	return &CurrencyFlow{
		api:        api,
		view:       view,
		log:        log,
		currencies: append([]string(nil), domain.DefaultCurrencies...),
		lastAmount: 1,
		lastFrom:   "USD",
		lastTo:     "EUR",
	}
}

// Start checks the backend, loads the live currency list (falling back to
// the defaults) and renders the selection.
func (f *CurrencyFlow) Start(ctx context.Context) {
	if err := f.api.Health(ctx); err != nil {
		f.view.APIStatus(false)
		f.view.Error("Unable to connect to backend API. Make sure the server is running.")
	} else {
		f.view.APIStatus(true)
	}

	f.loadCurrencies(ctx)
	f.view.Currencies(f.currencies)
}

// loadCurrencies replaces the default set with the live one when the rate
// service answers; otherwise the defaults stand.
func (f *CurrencyFlow) loadCurrencies(ctx context.Context) {
	rates, err := f.api.Rates(ctx, "USD")
	if err != nil {
		f.log.Warn().Err(err).Msg("could not load currency list, using defaults")
		return
	}

	codes := make([]string, 0, len(rates)+1)
	codes = append(codes, "USD")
	for code := range rates {
		if code != "USD" {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes[1:])
	f.currencies = codes
}

// Currencies returns the currently known currency codes.
func (f *CurrencyFlow) Currencies() []string {
	return append([]string(nil), f.currencies...)
}

type conversionInput struct {
	Amount float64 `validate:"gt=0"`
	From   string  `validate:"required,len=3,nefield=To"`
	To     string  `validate:"required,len=3"`
}

// Convert validates the request, then issues a single convert call. Invalid
// input never reaches the network.
func (f *CurrencyFlow) Convert(ctx context.Context, amount float64, from, to string) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if err := check(conversionInput{Amount: amount, From: from, To: to}); err != nil {
		metrics.ValidationsTotal.WithLabelValues("currency").Inc()
		f.view.Error(conversionMessage(err))
		return
	}

	f.view.Loading()

	conversion, err := f.api.Convert(ctx, from, to, amount)
	if err != nil {
		f.log.Warn().Err(err).Str("from", from).Str("to", to).Msg("conversion failed")
		f.view.Error(messageFor(err, "Failed to convert currency. Please try again."))
		return
	}

	f.lastAmount, f.lastFrom, f.lastTo = amount, from, to
	f.view.Result(conversion)
}

// Swap exchanges the last from/to pair and re-converts the last amount.
func (f *CurrencyFlow) Swap(ctx context.Context) {
	f.Convert(ctx, f.lastAmount, f.lastTo, f.lastFrom)
}

// Quick runs one of the preset pairs with the last amount.
func (f *CurrencyFlow) Quick(ctx context.Context, pair Pair) {
	f.Convert(ctx, f.lastAmount, pair.From, pair.To)
}

// ShowRates fetches and renders the rate table for the given base currency.
func (f *CurrencyFlow) ShowRates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "USD"
	}
	rates, err := f.api.Rates(ctx, base)
	if err != nil {
		f.view.Error(messageFor(err, "Failed to load exchange rates."))
		return nil, err
	}
	return rates, nil
}

// conversionMessage maps the two pre-flight checks to their user-facing
// wording.
func conversionMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		switch ve.Field {
		case "amount":
			return "Please enter a valid amount greater than 0"
		case "from":
			if strings.Contains(ve.Message, "differ") {
				return "Please select different currencies"
			}
		}
	}
	return err.Error()
}
