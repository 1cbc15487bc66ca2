package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: "29.99", want: "29.99"},
		{name: "currency symbol", raw: "$29.99", want: "29.99"},
		{name: "symbol and code", raw: "$29.99 USD", want: "29.99"},
		{name: "rupee symbol", raw: "₹1500", want: "1500"},
		{name: "thousands separator", raw: "1,299.00", want: "1299"},
		{name: "comma as decimal separator", raw: "29,99", want: "29.99"},
		{name: "surrounding whitespace", raw: "  42  ", want: "42"},
		{name: "zero", raw: "0", want: "0"},
		{name: "explicit plus sign", raw: "+10.50", want: "10.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanPrice(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCleanPriceErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "no digits", raw: "abc"},
		{name: "lone symbol", raw: "$"},
		{name: "negative", raw: "-5.00"},
		{name: "multiple dots", raw: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CleanPrice(tt.raw)
			require.Error(t, err)

			var invalid *InvalidPriceError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tt.raw, invalid.Raw)
		})
	}
}
