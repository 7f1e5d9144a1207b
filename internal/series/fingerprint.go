package series

import (
	"encoding/binary"
	"math"
	"slices"

	"fxdash/internal/domain"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies a series by content, for memoizing pure results.
func Fingerprint(s domain.RateSeries) uint64 {
	d := xxhash.New()
	var num [8]byte
	for _, obs := range s {
		_, _ = d.WriteString(obs.Date)
		_, _ = d.WriteString("|" + obs.Base + "|")

		quotes := make([]string, 0, len(obs.Rates))
		for q := range obs.Rates {
			quotes = append(quotes, q)
		}
		slices.Sort(quotes)
		for _, q := range quotes {
			_, _ = d.WriteString(q)
			binary.LittleEndian.PutUint64(num[:], math.Float64bits(obs.Rates[q]))
			_, _ = d.Write(num[:])
		}
		_, _ = d.WriteString(";")
	}
	return d.Sum64()
}
