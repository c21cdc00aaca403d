// Package currency converts and formats listing prices. All rates are
// pinned snapshots relative to USD; this layer deliberately does not
// fetch live rates.
package currency

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// rates holds units of each currency per 1 USD.
var rates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.5,
	"CHF": 0.88,
	"INR": 83.12,
	"AUD": 1.53,
	"CAD": 1.36,
	"CNY": 7.24,
	"HKD": 7.82,
	"SGD": 1.34,
	"AED": 3.67,
}

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CHF": "CHF ",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"CNY": "¥",
	"HKD": "HK$",
	"SGD": "S$",
	"AED": "AED ",
}

// Convert converts an amount between two currency codes, rounding to
// cents. Unknown codes are treated as parity with USD so a bad code
// degrades to a pass-through instead of an error.
func Convert(amount float64, from, to string) float64 {
	fromRate, ok := rates[strings.ToUpper(from)]
	if !ok {
		fromRate = 1.0
	}
	toRate, ok := rates[strings.ToUpper(to)]
	if !ok {
		toRate = 1.0
	}

	usd := amount / fromRate
	return math.Round(usd*toRate*100) / 100
}

// Format renders a price for display. A nil amount means the retailer
// did not expose a price. Luxury listings are shown as whole amounts
// with thousands separators.
func Format(amount *float64, code string) string {
	if amount == nil {
		return "Price on request"
	}

	code = strings.ToUpper(code)
	symbol, ok := symbols[code]
	if !ok {
		symbol = code + " "
	}

	return symbol + groupThousands(math.Round(*amount))
}

// groupThousands formats a non-negative rounded amount with comma
// separators, e.g. 12850 -> "12,850".
func groupThousands(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	n := len(s)
	if n <= 3 {
		return sign + s
	}

	var b strings.Builder
	first := n % 3
	if first > 0 {
		b.WriteString(s[:first])
	}
	for i := first; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// detectPattern pairs a price regexp with the currency it implies.
// Order matters: symbol patterns outrank code mentions, and the first
// match wins.
type detectPattern struct {
	re       *regexp.Regexp
	currency string
}

var detectPatterns = []detectPattern{
	{regexp.MustCompile(`\$\s*([\d,]+(?:\.\d{2})?)`), "USD"},
	{regexp.MustCompile(`€\s*([\d,]+(?:\.\d{2})?)`), "EUR"},
	{regexp.MustCompile(`£\s*([\d,]+(?:\.\d{2})?)`), "GBP"},
	{regexp.MustCompile(`¥\s*([\d,]+)`), "JPY"},
	{regexp.MustCompile(`₹\s*([\d,]+(?:\.\d{2})?)`), "INR"},
	{regexp.MustCompile(`(?i)CHF\s*([\d,]+(?:\.\d{2})?)`), "CHF"},
	{regexp.MustCompile(`(?i)USD\s*([\d,]+(?:\.\d{2})?)`), "USD"},
	{regexp.MustCompile(`(?i)EUR\s*([\d,]+(?:\.\d{2})?)`), "EUR"},
	{regexp.MustCompile(`(?i)GBP\s*([\d,]+(?:\.\d{2})?)`), "GBP"},
}

// DetectFromText scans free text for a priced amount and the currency it
// was quoted in. The first pattern that matches decides the result, even
// when its amount is zero. Returns (nil, "") when no recognizable price
// appears.
func DetectFromText(text string) (*float64, string) {
	for _, p := range detectPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		return &amount, p.currency
	}
	return nil, ""
}
