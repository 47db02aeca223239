package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/learnstack/demo-console/internal/core/domain"
)

func TestCurrencyView_ResultFormatting(t *testing.T) {
	var buf bytes.Buffer
	v := NewCurrencyView(&buf)

	v.Result(&domain.Conversion{
		FromCurrency:    "USD",
		ToCurrency:      "EUR",
		Amount:          100,
		ConvertedAmount: 92.50,
		ExchangeRate:    0.925,
		Timestamp:       time.Date(2024, 3, 1, 15, 4, 0, 0, time.Local),
	})

	out := buf.String()
	if !strings.Contains(out, "100.00 USD = 92.50 EUR") {
		t.Fatalf("converted amount not formatted to two decimals:\n%s", out)
	}
	// 0.925 must round to 0.93, not bank-round to 0.92
	if !strings.Contains(out, "1 USD = 0.93 EUR") {
		t.Fatalf("exchange rate not rounded half-up:\n%s", out)
	}
}

func TestAuthView_NavbarRendering(t *testing.T) {
	var buf bytes.Buffer
	v := NewAuthView(&buf, time.Minute)

	v.RenderNavbar(&domain.Session{
		Token: "abc.def.ghi",
		User:  domain.User{Username: "alice", Role: domain.RoleAdmin},
	})
	if !strings.Contains(buf.String(), "Welcome, alice [ADMIN]") {
		t.Fatalf("admin navbar missing welcome and badge:\n%s", buf.String())
	}

	buf.Reset()
	v.RenderNavbar(nil)
	if !strings.Contains(buf.String(), "Not logged in") {
		t.Fatalf("logged-out navbar wrong:\n%s", buf.String())
	}
}

func TestCatalogView_EmptyListing(t *testing.T) {
	var buf bytes.Buffer
	v := NewCatalogView(&buf, time.Minute)

	v.RenderProducts(nil)
	if !strings.Contains(buf.String(), "No products found") {
		t.Fatalf("empty listing placeholder missing:\n%s", buf.String())
	}
}

func TestCatalogView_TableUsesFallbacks(t *testing.T) {
	var buf bytes.Buffer
	v := NewCatalogView(&buf, time.Minute)

	v.RenderProducts([]domain.Product{{ID: 9, Name: "Sticker", Price: 1.5}})

	out := buf.String()
	if !strings.Contains(out, "Uncategorized") {
		t.Fatalf("missing category fallback:\n%s", out)
	}
	if !strings.Contains(out, "$1.50") {
		t.Fatalf("price not rendered to two decimals:\n%s", out)
	}
}
