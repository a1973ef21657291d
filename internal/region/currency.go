package region

import (
	"fmt"
	"math"
)

type Currency struct {
	Code       string
	Symbol     string
	RatePerUSD float64
}

// CurrencyTable maps country codes to display currencies.
type CurrencyTable map[string]Currency

// DefaultCurrencies uses fixed rates; they are for display only.
var DefaultCurrencies = CurrencyTable{
	"US": {Code: "USD", Symbol: "$", RatePerUSD: 1},
	"SG": {Code: "SGD", Symbol: "S$", RatePerUSD: 1.35},
	"MY": {Code: "MYR", Symbol: "RM", RatePerUSD: 4.7},
	"GB": {Code: "GBP", Symbol: "£", RatePerUSD: 0.79},
	"AU": {Code: "AUD", Symbol: "A$", RatePerUSD: 1.52},
}

// For returns the currency for country, falling back to the US entry.
func (t CurrencyTable) For(country string) Currency {
	if c, ok := t[country]; ok {
		return c
	}
	if c, ok := t[DefaultCountry]; ok {
		return c
	}
	return Currency{Code: "USD", Symbol: "$", RatePerUSD: 1}
}

// ConvertRange renders a monthly USD cost range in the country's currency,
// e.g. "S$81 - S$162/month". A zero range renders as "Free".
func (t CurrencyTable) ConvertRange(minUSD, maxUSD float64, country string) string {
	if minUSD <= 0 && maxUSD <= 0 {
		return "Free"
	}
	c := t.For(country)
	lo := math.Round(minUSD * c.RatePerUSD)
	hi := math.Round(maxUSD * c.RatePerUSD)
	if lo == hi {
		return fmt.Sprintf("%s%.0f/month", c.Symbol, hi)
	}
	return fmt.Sprintf("%s%.0f - %s%.0f/month", c.Symbol, lo, c.Symbol, hi)
}
