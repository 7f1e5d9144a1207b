package dashboard

import (
	"errors"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	// MaxSpan is the widest window the upstream is asked for.
	MaxSpan = 730 * 24 * time.Hour
)

var (
	ErrInvalidRange  = errors.New("range must be one of 6m, 1y, 2y")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDatesRequired = errors.New("start_date and end_date are required")
	ErrStartAfterEnd = errors.New("start_date must not be after end_date")
	ErrRangeTooLong  = errors.New("date range cannot exceed 2 years")
	ErrTooManyQuotes = errors.New("too many quote currencies")
)

type DateRange string

const (
	Range6M DateRange = "6m"
	Range1Y DateRange = "1y"
	Range2Y DateRange = "2y"

	DefaultRange = Range1Y
)

var dateRanges = []DateRange{Range6M, Range1Y, Range2Y}

func ParseDateRange(s string) (DateRange, error) {
	r := DateRange(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(dateRanges, r) {
		return "", ErrInvalidRange
	}
	return r, nil
}

// Resolve returns the [start, end] window ending today. 2y starts one day
// later than a plain two-year step so the window stays within MaxSpan.
func (r DateRange) Resolve(now time.Time) (time.Time, time.Time) {
	end := truncateDay(now)
	switch r {
	case Range6M:
		return end.AddDate(0, -6, 0), end
	case Range2Y:
		return end.AddDate(-2, 0, 1), end
	default:
		return end.AddDate(-1, 0, 0), end
	}
}

// Query describes one dashboard request after defaults are applied.
type Query struct {
	Base   string
	Quotes []string
	Range  DateRange
	Start  time.Time
	End    time.Time
}

// Defaults are used for parameters the caller leaves out.
type Defaults struct {
	Base   string
	Quotes []string
	Range  DateRange
}

const maxQuotes = 32

// ParseQuery reads base, symbols and either range or start_date/end_date.
// Explicit dates win over range; both dates must be given together.
func ParseQuery(params url.Values, defaults Defaults, now time.Time) (Query, error) {
	q := Query{
		Base:   strings.ToUpper(strings.TrimSpace(params.Get("base"))),
		Quotes: splitCodes(params.Get("symbols")),
		Range:  defaults.Range,
	}
	if q.Base == "" {
		q.Base = defaults.Base
	}
	if len(q.Quotes) == 0 {
		q.Quotes = slices.Clone(defaults.Quotes)
	}
	if len(q.Quotes) > maxQuotes {
		return Query{}, ErrTooManyQuotes
	}
	if q.Range == "" {
		q.Range = DefaultRange
	}

	startRaw := strings.TrimSpace(params.Get("start_date"))
	endRaw := strings.TrimSpace(params.Get("end_date"))
	if startRaw == "" && endRaw == "" {
		if raw := params.Get("range"); raw != "" {
			r, err := ParseDateRange(raw)
			if err != nil {
				return Query{}, err
			}
			q.Range = r
		}
		q.Start, q.End = q.Range.Resolve(now)
		return q, nil
	}

	if startRaw == "" || endRaw == "" {
		return Query{}, ErrDatesRequired
	}
	start, err := time.Parse(DateLayout, startRaw)
	if err != nil {
		return Query{}, ErrInvalidDate
	}
	end, err := time.Parse(DateLayout, endRaw)
	if err != nil {
		return Query{}, ErrInvalidDate
	}
	if start.After(end) {
		return Query{}, ErrStartAfterEnd
	}
	if end.Sub(start) > MaxSpan {
		return Query{}, ErrRangeTooLong
	}
	q.Range = ""
	q.Start, q.End = start, end
	return q, nil
}

// ParsePairKeys reads the comma separated pairs filter, uppercased and deduplicated.
func ParsePairKeys(raw string) []string {
	return splitCodes(raw)
}

// Name labels the window for file names: the range when known, else start_end.
func (q Query) Name() string {
	if q.Range != "" {
		return string(q.Range)
	}
	return q.Start.Format(DateLayout) + "_" + q.End.Format(DateLayout)
}

func splitCodes(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" || slices.Contains(codes, p) {
			continue
		}
		codes = append(codes, p)
	}
	return codes
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
