package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/learnstack/demo-console/internal/core/domain"
	"github.com/learnstack/demo-console/internal/core/ports"
)

// CurrencyView renders the converter console: API status line, currency
// list, loading marker and the result/error regions.
type CurrencyView struct {
	out io.Writer
}

var _ ports.CurrencyView = (*CurrencyView)(nil)

func NewCurrencyView(out io.Writer) *CurrencyView {
	return &CurrencyView{out: out}
}

func (v *CurrencyView) APIStatus(connected bool) {
	if connected {
		fmt.Fprintln(v.out, "API Connected")
	} else {
		fmt.Fprintln(v.out, "API Disconnected")
	}
}

func (v *CurrencyView) Currencies(codes []string) {
	labels := make([]string, len(codes))
	for i, code := range codes {
		labels[i] = CurrencySymbol(code) + " " + code
	}
	fmt.Fprintf(v.out, "Currencies: %s\n", strings.Join(labels, ", "))
}

func (v *CurrencyView) Loading() {
	fmt.Fprintln(v.out, "Converting...")
}

func (v *CurrencyView) Result(c *domain.Conversion) {
	fmt.Fprintf(v.out, "%s %s = %s %s\n",
		FormatAmount(c.Amount), c.FromCurrency,
		FormatAmount(c.ConvertedAmount), c.ToCurrency)
	fmt.Fprintf(v.out, "1 %s = %s %s\n", c.FromCurrency, FormatAmount(c.ExchangeRate), c.ToCurrency)
	fmt.Fprintf(v.out, "Converted at %s\n", c.Timestamp.Local().Format("15:04"))
}

func (v *CurrencyView) Error(message string) {
	fmt.Fprintf(v.out, "✘ %s\n", message)
}
