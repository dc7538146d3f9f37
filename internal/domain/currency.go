package domain

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is a display currency. Prices are stored in EUR and converted
// on output.
type Currency string

const (
	EUR Currency = "EUR"
	DKK Currency = "DKK"
	USD Currency = "USD"
)

// DefaultCurrency is the canonical currency of stored amounts.
const DefaultCurrency = EUR

// Currencies lists the supported display currencies.
var Currencies = []Currency{EUR, DKK, USD}

// Fixed EUR-based exchange rates. Not refreshed from a live source.
var exchangeRates = map[Currency]float64{
	EUR: 1.0,
	DKK: 7.46,
	USD: 1.08,
}

// ParseCurrency accepts a case-insensitive ISO 4217 code.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := exchangeRates[c]; !ok {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

// Rate returns the fixed EUR→c rate. Unknown currencies convert at 1.
func (c Currency) Rate() float64 {
	if r, ok := exchangeRates[c]; ok {
		return r
	}
	return 1.0
}

func (c Currency) String() string { return string(c) }

// Convert converts a canonical EUR amount into c.
func Convert(amountEUR float64, c Currency) float64 {
	return amountEUR * c.Rate()
}

// FormatPrice converts amountEUR into c and renders it with exactly two
// fraction digits: "€1,234.50", "1.234,50 kr.", "$1,234.50".
func FormatPrice(amountEUR float64, c Currency) string {
	v := math.Round(Convert(amountEUR, c)*100) / 100
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	var locale language.Tag
	switch c {
	case DKK:
		locale = language.Danish
	case USD:
		locale = language.AmericanEnglish
	default:
		locale = language.English
	}
	digits := message.NewPrinter(locale).Sprint(number.Decimal(v, number.Scale(2)))

	switch c {
	case DKK:
		return sign + digits + " kr."
	case USD:
		return sign + "$" + digits
	default:
		return sign + "€" + digits
	}
}
