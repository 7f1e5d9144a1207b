package dashboard

import (
	"context"
	"fmt"
	"fxdash/internal/adapters"
	"fxdash/internal/domain"
	"fxdash/internal/series"
	"strconv"
	"strings"
)

type Service struct {
	client adapters.RateClient
	cache  adapters.ChartCache
}

// Series fetches the raw series for q. Upstream failures are reported as
// domain.ErrUpstreamUnavailable.
func (s *Service) Series(ctx context.Context, q Query) (domain.RateSeries, error) {
	rs, err := s.client.GetSeries(ctx, q.Base, q.Quotes, q.Start, q.End)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	return rs, nil
}

// Chart returns the chart model for q narrowed to the selected pair keys.
func (s *Service) Chart(ctx context.Context, q Query, selected []string) (series.ChartModel, error) {
	rs, err := s.Series(ctx, q)
	if err != nil {
		return series.ChartModel{}, err
	}
	return series.FilterDatasets(s.chartModel(rs, q.Quotes), selected), nil
}

func (s *Service) Table(ctx context.Context, q Query) ([]series.TableRow, error) {
	rs, err := s.Series(ctx, q)
	if err != nil {
		return nil, err
	}
	return series.ToTableRows(rs), nil
}

// Dashboard fetches once and derives the chart, the grid and the header stats.
func (s *Service) Dashboard(ctx context.Context, q Query, selected []string) (View, error) {
	rs, err := s.Series(ctx, q)
	if err != nil {
		return View{}, err
	}

	rows := series.ToTableRows(rs)
	stats := series.Changes(rs, q.Quotes)
	if stats == nil {
		stats = []series.PairChange{}
	}
	return View{
		Base:      q.Base,
		Quotes:    q.Quotes,
		StartDate: q.Start.Format(DateLayout),
		EndDate:   q.End.Format(DateLayout),
		Chart:     series.FilterDatasets(s.chartModel(rs, q.Quotes), selected),
		Columns:   series.TableColumns(rows),
		Rows:      rows,
		Stats:     stats,
	}, nil
}

func (s *Service) chartModel(rs domain.RateSeries, quotes []string) series.ChartModel {
	if s.cache == nil {
		return series.ToChartModel(rs, quotes)
	}
	key := chartKey(rs, quotes)
	if m, ok := s.cache.Get(key); ok {
		return m
	}
	m := series.ToChartModel(rs, quotes)
	s.cache.Set(key, m)
	return m
}

func chartKey(rs domain.RateSeries, quotes []string) string {
	return strconv.FormatUint(series.Fingerprint(rs), 16) + "|" + strings.Join(quotes, ",")
}

// NewService builds the service; cache may be nil to disable memoization.
func NewService(client adapters.RateClient, cache adapters.ChartCache) *Service {
	return &Service{client: client, cache: cache}
}
