package series

import (
	"strings"

	"fxdash/internal/domain"
)

// PairChange is a dashboard header card: the latest rate of a pair and its
// percentage change since the first observation of the series.
type PairChange struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Rate   float64 `json:"rate"`
	Change float64 `json:"change"`
}

// Changes compares the first and the last observation for every quote, both
// directions. The inverse change is computed from the inverted rates, it is
// not the negated forward change. Pairs without a usable rate at either end
// are skipped; an empty series yields nil.
func Changes(s domain.RateSeries, quotes []string) []PairChange {
	if len(s) == 0 {
		return nil
	}
	first, latest := s[0], s[len(s)-1]
	base := s.Base()

	var out []PairChange
	for _, quote := range quotes {
		quote = strings.ToUpper(quote)
		then, okThen := first.Rates[quote]
		now, okNow := latest.Rates[quote]
		if !okThen || !okNow {
			continue
		}
		invThen, okInvThen := reciprocal(then)
		invNow, okInvNow := reciprocal(now)
		if !okInvThen || !okInvNow {
			continue
		}

		pair := domain.CurrencyPair{Base: base, Quote: quote}
		out = append(out,
			newPairChange(pair, now, then),
			newPairChange(pair.Reversed(), invNow, invThen),
		)
	}
	return out
}

func newPairChange(pair domain.CurrencyPair, now, then float64) PairChange {
	return PairChange{
		Key:    pair.Key(),
		Label:  strings.ToUpper(pair.Base) + " / " + strings.ToUpper(pair.Quote),
		Rate:   now,
		Change: (now - then) / then * 100,
	}
}
