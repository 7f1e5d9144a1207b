package domain

import "strings"

// RateObservation is one dated entry of a rate series: quote code -> base/quote rate.
type RateObservation struct {
	Date  string             `json:"date"`
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// RateSeries is ordered ascending by date and shares a single base.
// A nil series means the data has not arrived yet.
type RateSeries []RateObservation

// Base returns the base currency of the series or "" when it is empty.
func (s RateSeries) Base() string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[0].Base)
}

type CurrencyPair struct {
	Base  string
	Quote string
}

func (p CurrencyPair) Reversed() CurrencyPair {
	return CurrencyPair{
		Base:  p.Quote,
		Quote: p.Base,
	}
}

// Label is the chart-facing name, e.g. "EUR/USD".
func (p CurrencyPair) Label() string {
	return strings.ToUpper(p.Base) + "/" + strings.ToUpper(p.Quote)
}

// Key is the grid column name, e.g. "EUR_USD".
func (p CurrencyPair) Key() string {
	return strings.ToUpper(p.Base) + "_" + strings.ToUpper(p.Quote)
}

// PairKeys lists forward and reverse keys for every quote, in quote order.
func PairKeys(base string, quotes []string) []string {
	keys := make([]string, 0, 2*len(quotes))
	for _, q := range quotes {
		p := CurrencyPair{Base: base, Quote: q}
		keys = append(keys, p.Key(), p.Reversed().Key())
	}
	return keys
}
