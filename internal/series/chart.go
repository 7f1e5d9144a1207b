package series

import (
	"strings"

	"fxdash/internal/domain"
)

// lineTension is the curve smoothing the chart collaborator applies to every line.
const lineTension = 0.1

// ChartSeries is one plotted line. A nil point marks a missing value.
type ChartSeries struct {
	Label   string     `json:"label"`
	Points  []*float64 `json:"data"`
	Color   string     `json:"borderColor"`
	Tension float64    `json:"tension"`
}

type ChartModel struct {
	Labels   []string      `json:"labels"`
	Datasets []ChartSeries `json:"datasets"`
}

// ToChartModel builds labels plus a forward and an inverse line for every quote,
// coloring them from DefaultPalette starting at its first color.
func ToChartModel(s domain.RateSeries, quotes []string) ChartModel {
	return ToChartModelWithCursor(s, quotes, NewColorCursor(DefaultPalette))
}

// ToChartModelWithCursor is ToChartModel with a caller-owned color cursor.
// The cursor advances once per emitted line.
func ToChartModelWithCursor(s domain.RateSeries, quotes []string, cursor *ColorCursor) ChartModel {
	if len(s) == 0 {
		return ChartModel{Labels: []string{}, Datasets: []ChartSeries{}}
	}
	if cursor == nil {
		cursor = NewColorCursor(DefaultPalette)
	}

	labels := make([]string, len(s))
	for i, obs := range s {
		labels[i] = obs.Date
	}

	base := s.Base()
	datasets := make([]ChartSeries, 0, 2*len(quotes))
	for _, quote := range quotes {
		quote = strings.ToUpper(quote)
		pair := domain.CurrencyPair{Base: base, Quote: quote}
		forward := make([]*float64, len(s))
		inverse := make([]*float64, len(s))

		for i, obs := range s {
			rate, ok := obs.Rates[quote]
			if !ok || !finite(rate) {
				continue
			}
			forward[i] = &rate
			if inv, invOK := reciprocal(rate); invOK {
				inverse[i] = &inv
			}
		}

		datasets = append(datasets,
			ChartSeries{Label: pair.Label(), Points: forward, Color: cursor.Next(), Tension: lineTension},
			ChartSeries{Label: pair.Reversed().Label(), Points: inverse, Color: cursor.Next(), Tension: lineTension},
		)
	}

	return ChartModel{Labels: labels, Datasets: datasets}
}

// FilterDatasets keeps only the lines whose pair key ("EUR_USD") is listed.
// An empty key list keeps everything. Colors are left as assigned.
func FilterDatasets(m ChartModel, keys []string) ChartModel {
	if len(keys) == 0 {
		return m
	}
	allowed := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		allowed[k] = struct{}{}
	}

	kept := make([]ChartSeries, 0, len(m.Datasets))
	for _, ds := range m.Datasets {
		if _, ok := allowed[strings.ReplaceAll(ds.Label, "/", "_")]; ok {
			kept = append(kept, ds)
		}
	}
	return ChartModel{Labels: m.Labels, Datasets: kept}
}
