package transform

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvalidPriceError reports a price cell that could not be cleaned
// into a non-negative decimal. It excludes the row but never the
// batch.
type InvalidPriceError struct {
	Raw string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price value %q", e.Raw)
}

// CleanPrice strips currency symbols and separators from a raw price
// cell and parses the remainder as a non-negative decimal. "$29.99
// USD" becomes 29.99. A comma is treated as a thousands separator when
// a dot is also present, otherwise as the decimal separator.
func CleanPrice(raw string) (decimal.Decimal, error) {
	cleaned := stripPrice(raw)
	if cleaned == "" {
		return decimal.Decimal{}, &InvalidPriceError{Raw: raw}
	}

	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		}
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, &InvalidPriceError{Raw: raw}
	}
	if price.IsNegative() {
		return decimal.Decimal{}, &InvalidPriceError{Raw: raw}
	}

	return price, nil
}

// stripPrice keeps digits, separators, and a single leading sign.
func stripPrice(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case (r == '-' || r == '+') && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
