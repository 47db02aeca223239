package console

import (
	"strconv"
	"strings"
	"time"
)

// currencySymbols maps well-known codes to their display symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CHF": "Fr",
	"CNY": "¥",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code, or the code
// itself when no symbol is known.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// FormatAmount renders v with en-US thousands grouping and exactly two
// fraction digits. Rounding is decimal half-away-from-zero applied to the
// shortest decimal representation of v, so 0.925 renders as "0.93" and 92.5
// as "92.50". A float printf would round through the binary representation
// and turn 0.925 into "0.92".
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	intPart, frac = roundFraction(intPart, frac, 2)

	out := groupThousands(intPart) + "." + frac
	if neg && (strings.Trim(intPart, "0") != "" || frac != "00") {
		out = "-" + out
	}
	return out
}

// roundFraction truncates frac to places digits, rounding half away from
// zero and carrying into the integer part when needed.
func roundFraction(intPart, frac string, places int) (string, string) {
	for len(frac) < places {
		frac += "0"
	}
	if len(frac) == places {
		return intPart, frac
	}

	keep, rest := frac[:places], frac[places:]
	if rest[0] < '5' {
		return intPart, keep
	}

	digits := []byte(intPart + keep)
	i := len(digits) - 1
	for ; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			break
		}
		digits[i] = '0'
	}
	if i < 0 {
		digits = append([]byte{'1'}, digits...)
	}
	return string(digits[:len(digits)-places]), string(digits[len(digits)-places:])
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatDate renders a server-assigned instant for the product table, or "-"
// when absent.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("1/2/2006 15:04")
}
