package dashboard

import (
	"errors"
	"maps"
	"slices"
	"sync/atomic"
)

var (
	ErrBaseRequired     = errors.New("base currency is required")
	ErrQuoteRequired    = errors.New("quote currency is required")
	ErrSameCodes        = errors.New("base and quote must be different")
	ErrBaseUnsupported  = errors.New("base currency not supported")
	ErrQuoteUnsupported = errors.New("quote currency not supported")
)

type catalog struct {
	names map[string]string // read only copy
	codes []string          // read only copy, sorted
}

// CurrencyValidator checks codes against the supported catalog. The catalog
// can be swapped while requests are being validated.
type CurrencyValidator struct {
	current atomic.Pointer[catalog]
}

func (v *CurrencyValidator) ValidateCodes(base, quote string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if quote == "" {
		return ErrQuoteRequired
	}
	if base == quote {
		return ErrSameCodes
	}
	c := v.current.Load()
	if _, ok := c.names[base]; !ok {
		return ErrBaseUnsupported
	}
	if _, ok := c.names[quote]; !ok {
		return ErrQuoteUnsupported
	}
	return nil
}

// ValidateQuery checks the base against every requested quote.
func (v *CurrencyValidator) ValidateQuery(q Query) error {
	if len(q.Quotes) == 0 {
		return ErrQuoteRequired
	}
	for _, quote := range q.Quotes {
		if err := v.ValidateCodes(q.Base, quote); err != nil {
			return err
		}
	}
	return nil
}

func (v *CurrencyValidator) SupportedCodes() []string {
	return slices.Clone(v.current.Load().codes)
}

func (v *CurrencyValidator) Currencies() map[string]string {
	return maps.Clone(v.current.Load().names)
}

// Replace swaps in a new catalog. An empty catalog is ignored so a bad
// upstream response cannot lock every request out.
func (v *CurrencyValidator) Replace(currencies map[string]string) bool {
	if len(currencies) == 0 {
		return false
	}
	v.current.Store(newCatalog(currencies))
	return true
}

func newCatalog(currencies map[string]string) *catalog {
	names := maps.Clone(currencies)
	if names == nil {
		names = map[string]string{}
	}
	return &catalog{names: names, codes: slices.Sorted(maps.Keys(names))}
}

func NewValidator(supportedCurrencies map[string]string) *CurrencyValidator {
	v := &CurrencyValidator{}
	v.current.Store(newCatalog(supportedCurrencies))
	return v
}
