package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fxdash/internal/domain"
	"fxdash/internal/series"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testQuery() Query {
	return Query{
		Base:   "EUR",
		Quotes: []string{"USD", "CAD"},
		Range:  Range1Y,
		Start:  day("2024-01-01"),
		End:    day("2024-01-03"),
	}
}

func testSeries() domain.RateSeries {
	return domain.RateSeries{
		{Date: "2024-01-02", Base: "EUR", Rates: map[string]float64{"USD": 1.25, "CAD": 2.0}},
		{Date: "2024-01-03", Base: "EUR", Rates: map[string]float64{"USD": 1.5, "CAD": 1.6}},
	}
}

func expectSeries(client *MockRateClient, q Query, s domain.RateSeries, err error) {
	client.On("GetSeries", mock.Anything, q.Base, q.Quotes, q.Start, q.End).Return(s, err).Once()
}

// --- Series ---

func TestService_Series_WrapsUpstreamError(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	boom := errors.New("connection refused")
	expectSeries(client, q, nil, boom)

	_, err := svc.Series(context.Background(), q)

	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	require.ErrorIs(t, err, boom)
	client.AssertExpectations(t)
}

// --- Chart ---

func TestService_Chart_AllPairs(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, testSeries(), nil)

	model, err := svc.Chart(context.Background(), q, nil)
	require.NoError(t, err)

	require.Equal(t, []string{"2024-01-02", "2024-01-03"}, model.Labels)
	require.Len(t, model.Datasets, 4)
	require.Equal(t, "EUR/USD", model.Datasets[0].Label)
	require.Equal(t, "USD/EUR", model.Datasets[1].Label)
	client.AssertExpectations(t)
}

func TestService_Chart_FiltersSelectedPairs(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, testSeries(), nil)

	model, err := svc.Chart(context.Background(), q, []string{"CAD_EUR"})
	require.NoError(t, err)

	require.Len(t, model.Datasets, 1)
	require.Equal(t, "CAD/EUR", model.Datasets[0].Label)
	// color is the one assigned before filtering
	require.Equal(t, series.DefaultPalette[3], model.Datasets[0].Color)
}

func TestService_Chart_UpstreamError(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, nil, errors.New("503"))

	_, err := svc.Chart(context.Background(), q, nil)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestService_Chart_UsesCache(t *testing.T) {
	client := new(MockRateClient)
	cache := new(MockChartCache)
	svc := NewService(client, cache)
	q := testQuery()
	rs := testSeries()
	key := chartKey(rs, q.Quotes)
	cached := series.ChartModel{Labels: []string{"cached"}, Datasets: []series.ChartSeries{}}

	expectSeries(client, q, rs, nil)
	cache.On("Get", key).Return(cached, true).Once()

	model, err := svc.Chart(context.Background(), q, nil)
	require.NoError(t, err)

	require.Equal(t, cached, model)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestService_Chart_StoresInCacheOnMiss(t *testing.T) {
	client := new(MockRateClient)
	cache := new(MockChartCache)
	svc := NewService(client, cache)
	q := testQuery()
	rs := testSeries()
	key := chartKey(rs, q.Quotes)

	expectSeries(client, q, rs, nil)
	cache.On("Get", key).Return(series.ChartModel{}, false).Once()
	cache.On("Set", key, series.ToChartModel(rs, q.Quotes)).Once()

	_, err := svc.Chart(context.Background(), q, nil)
	require.NoError(t, err)
	cache.AssertExpectations(t)
}

func TestChartKey_DependsOnQuotesAndData(t *testing.T) {
	rs := testSeries()
	require.Equal(t, chartKey(rs, []string{"USD", "CAD"}), chartKey(testSeries(), []string{"USD", "CAD"}))
	require.NotEqual(t, chartKey(rs, []string{"USD", "CAD"}), chartKey(rs, []string{"CAD", "USD"}))

	changed := testSeries()
	changed[1].Rates["USD"] = 1.51
	require.NotEqual(t, chartKey(rs, []string{"USD"}), chartKey(changed, []string{"USD"}))
}

// --- Table ---

func TestService_Table(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, testSeries(), nil)

	rows, err := svc.Table(context.Background(), q)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	v, ok := rows[1].Value("USD_EUR")
	require.True(t, ok)
	require.Equal(t, 0.666667, v)
}

func TestService_Table_EmptySeries(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, domain.RateSeries{}, nil)

	rows, err := svc.Table(context.Background(), q)
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

// --- Dashboard ---

func TestService_Dashboard(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, testSeries(), nil)

	view, err := svc.Dashboard(context.Background(), q, []string{"EUR_USD", "USD_EUR"})
	require.NoError(t, err)

	require.Equal(t, "EUR", view.Base)
	require.Equal(t, "2024-01-01", view.StartDate)
	require.Equal(t, "2024-01-03", view.EndDate)
	require.Len(t, view.Chart.Datasets, 2)
	require.Len(t, view.Rows, 2)
	require.Equal(t, []string{"date", "EUR_CAD", "CAD_EUR", "EUR_USD", "USD_EUR"}, view.Columns)

	require.Len(t, view.Stats, 4)
	require.Equal(t, "EUR_USD", view.Stats[0].Key)
	require.InDelta(t, 20.0, view.Stats[0].Change, 1e-9)
	require.Equal(t, "EUR_CAD", view.Stats[2].Key)
	require.InDelta(t, -20.0, view.Stats[2].Change, 1e-9)

	// the whole view is fetched once
	client.AssertNumberOfCalls(t, "GetSeries", 1)
}

func TestService_Dashboard_EmptySeriesEncodesEmptyCollections(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, nil, nil)

	view, err := svc.Dashboard(context.Background(), q, nil)
	require.NoError(t, err)

	body, err := json.Marshal(view)
	require.NoError(t, err)
	require.Contains(t, string(body), `"chart":{"labels":[],"datasets":[]}`)
	require.Contains(t, string(body), `"rows":[]`)
	require.Contains(t, string(body), `"stats":[]`)
	require.Contains(t, string(body), `"columns":["date"]`)
}

func TestService_Dashboard_UpstreamError(t *testing.T) {
	client := new(MockRateClient)
	svc := NewService(client, nil)
	q := testQuery()
	expectSeries(client, q, nil, errors.New("timeout"))

	_, err := svc.Dashboard(context.Background(), q, nil)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
