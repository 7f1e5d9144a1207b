package dashboard

import "fxdash/internal/series"

// View is everything the dashboard page renders for one query.
type View struct {
	Base      string              `json:"base"`
	Quotes    []string            `json:"quotes"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
	Chart     series.ChartModel   `json:"chart"`
	Columns   []string            `json:"columns"`
	Rows      []series.TableRow   `json:"rows"`
	Stats     []series.PairChange `json:"stats"`
}
