package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		from     string
		to       string
		expected float64
	}{
		{
			name:     "same currency is identity",
			amount:   1250,
			from:     "USD",
			to:       "USD",
			expected: 1250,
		},
		{
			name:     "eur to usd",
			amount:   920,
			from:     "EUR",
			to:       "USD",
			expected: 1000,
		},
		{
			name:     "usd to gbp",
			amount:   100,
			from:     "USD",
			to:       "GBP",
			expected: 79,
		},
		{
			name:     "jpy to usd rounds to cents",
			amount:   50000,
			from:     "JPY",
			to:       "USD",
			expected: 334.45,
		},
		{
			name:     "unknown source treated as usd parity",
			amount:   500,
			from:     "XYZ",
			to:       "USD",
			expected: 500,
		},
		{
			name:     "lowercase codes accepted",
			amount:   920,
			from:     "eur",
			to:       "usd",
			expected: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Convert(tt.amount, tt.from, tt.to), 0.001)
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	// Converting there and back again lands within rounding error of
	// the original, for every known pair.
	codes := []string{"USD", "EUR", "GBP", "JPY", "CHF", "INR", "AUD", "CAD", "CNY", "HKD", "SGD", "AED"}
	amounts := []float64{1, 99.95, 1250, 8200, 1495000}

	for _, from := range codes {
		for _, to := range codes {
			// Each leg rounds to cents; the intermediate half-cent
			// scales back up by the rate ratio.
			tol := 0.005*rates[from]/rates[to] + 0.006
			for _, amount := range amounts {
				back := Convert(Convert(amount, from, to), to, from)
				assert.InDeltaf(t, amount, back, tol,
					"%v %s -> %s -> %s", amount, from, to, from)
			}
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   *float64
		code     string
		expected string
	}{
		{
			name:     "nil amount",
			amount:   nil,
			code:     "USD",
			expected: "Price on request",
		},
		{
			name:     "usd with thousands separator",
			amount:   f(12850),
			code:     "USD",
			expected: "$12,850",
		},
		{
			name:     "cents are rounded away",
			amount:   f(999.99),
			code:     "USD",
			expected: "$1,000",
		},
		{
			name:     "euro symbol",
			amount:   f(3200),
			code:     "EUR",
			expected: "€3,200",
		},
		{
			name:     "chf uses spaced prefix",
			amount:   f(5400),
			code:     "CHF",
			expected: "CHF 5,400",
		},
		{
			name:     "unknown code falls back to code prefix",
			amount:   f(750),
			code:     "SEK",
			expected: "SEK 750",
		},
		{
			name:     "large jpy amount",
			amount:   f(1495000),
			code:     "JPY",
			expected: "¥1,495,000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.code))
		})
	}
}

func TestDetectFromText(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		expectedAmount *float64
		expectedCode   string
	}{
		{
			name:           "dollar with comma",
			text:           "Chanel Classic Flap $8,200.00 available now",
			expectedAmount: f(8200),
			expectedCode:   "USD",
		},
		{
			name:           "euro symbol",
			text:           "Prix boutique: €3,450 tax included",
			expectedAmount: f(3450),
			expectedCode:   "EUR",
		},
		{
			name:           "pound symbol",
			text:           "Now £1,995 at Selfridges",
			expectedAmount: f(1995),
			expectedCode:   "GBP",
		},
		{
			name:           "yen has no decimals",
			text:           "¥1,495,000 tax included",
			expectedAmount: f(1495000),
			expectedCode:   "JPY",
		},
		{
			name:           "dollar outranks trailing eur mention",
			text:           "$5,000 (approx EUR 4,600)",
			expectedAmount: f(5000),
			expectedCode:   "USD",
		},
		{
			name:           "code without symbol",
			text:           "Retail price USD 4200",
			expectedAmount: f(4200),
			expectedCode:   "USD",
		},
		{
			name:           "chf code case-insensitive",
			text:           "listed at chf 6,100",
			expectedAmount: f(6100),
			expectedCode:   "CHF",
		},
		{
			name:           "no price at all",
			text:           "Timeless icon of luxury craftsmanship",
			expectedAmount: nil,
			expectedCode:   "",
		},
		{
			name:           "zero amount still wins as the first match",
			text:           "$0 down payment, full price EUR 4,600",
			expectedAmount: f(0),
			expectedCode:   "USD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, code := DetectFromText(tt.text)
			assert.Equal(t, tt.expectedCode, code)
			if tt.expectedAmount == nil {
				assert.Nil(t, amount)
			} else {
				assert.NotNil(t, amount)
				assert.InDelta(t, *tt.expectedAmount, *amount, 0.001)
			}
		})
	}
}
