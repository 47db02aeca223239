package console

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{0.925, "0.93"}, // decimal half-up, not binary rounding
		{0.924, "0.92"},
		{92.5, "92.50"},
		{92.505, "92.51"},
		{100, "100.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{999.995, "1,000.00"},
		{0.005, "0.01"},
		{-0.925, "-0.93"},
		{-1234.5, "-1,234.50"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	if got := CurrencySymbol("USD"); got != "$" {
		t.Errorf("USD symbol = %q, want $", got)
	}
	if got := CurrencySymbol("XXX"); got != "XXX" {
		t.Errorf("unknown code should fall back to itself, got %q", got)
	}
}
