package series

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"

	"fxdash/internal/domain"
)

const DateColumn = "date"

// TableRow is one grid/export row. Values holds the rounded forward
// ("EUR_USD") and reciprocal ("USD_EUR") rates present for Date.
type TableRow struct {
	Date   string
	Base   string
	Values map[string]float64
}

func (r TableRow) Value(key string) (float64, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// quotes returns the quote currencies the row carries a forward rate for.
func (r TableRow) quotes() []string {
	prefix := r.Base + "_"
	var out []string
	for key := range r.Values {
		if q, ok := strings.CutPrefix(key, prefix); ok {
			out = append(out, q)
		}
	}
	slices.Sort(out)
	return out
}

// MarshalJSON writes the flat object the grid expects: date first, then
// forward/reverse columns grouped per quote in alphabetical order.
func (r TableRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeField(&buf, DateColumn, r.Date); err != nil {
		return nil, err
	}
	for _, key := range columnsFor(r.Base, r.quotes()) {
		v, ok := r.Values[key]
		if !ok {
			continue
		}
		buf.WriteByte(',')
		if err := writeField(&buf, key, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeField(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// ToTableRows flattens every observation into one row, in input order.
// Values are rounded once here and must be consumed verbatim downstream.
func ToTableRows(s domain.RateSeries) []TableRow {
	rows := make([]TableRow, 0, len(s))
	base := s.Base()

	for _, obs := range s {
		row := TableRow{
			Date:   obs.Date,
			Base:   base,
			Values: make(map[string]float64, 2*len(obs.Rates)),
		}
		for quote, rate := range obs.Rates {
			if !finite(rate) {
				continue
			}
			pair := domain.CurrencyPair{Base: base, Quote: quote}
			row.Values[pair.Key()] = Round(rate)
			if inv, ok := reciprocal(rate); ok {
				row.Values[pair.Reversed().Key()] = Round(inv)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// TableColumns is the ordered header shared by every export of rows:
// "date", then BASE_QUOTE and QUOTE_BASE for each quote seen, alphabetically.
func TableColumns(rows []TableRow) []string {
	if len(rows) == 0 {
		return []string{DateColumn}
	}
	seen := make(map[string]struct{})
	var quotes []string
	for _, row := range rows {
		for _, q := range row.quotes() {
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			quotes = append(quotes, q)
		}
	}
	slices.Sort(quotes)
	return append([]string{DateColumn}, columnsFor(rows[0].Base, quotes)...)
}

func columnsFor(base string, quotes []string) []string {
	return domain.PairKeys(base, quotes)
}
