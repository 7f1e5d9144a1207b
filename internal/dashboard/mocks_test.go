package dashboard

import (
	"context"
	"time"

	"fxdash/internal/domain"
	"fxdash/internal/series"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Testify mocks ---

type MockRateClient struct{ mock.Mock }

func (m *MockRateClient) GetSeries(ctx context.Context, base string, quotes []string, start, end time.Time) (domain.RateSeries, error) {
	args := m.Called(ctx, base, quotes, start, end)
	s, _ := args.Get(0).(domain.RateSeries)
	return s, args.Error(1)
}

func (m *MockRateClient) GetCurrencies(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(map[string]string)
	return c, args.Error(1)
}

type MockCurrencyRepository struct{ mock.Mock }

func (m *MockCurrencyRepository) List(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(map[string]string)
	return c, args.Error(1)
}

func (m *MockCurrencyRepository) Upsert(ctx context.Context, currencies map[string]string) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

type MockPreferencesRepository struct{ mock.Mock }

func (m *MockPreferencesRepository) Get(ctx context.Context, profileID uuid.UUID) (domain.StoredPreferences, error) {
	args := m.Called(ctx, profileID)
	p, _ := args.Get(0).(domain.StoredPreferences)
	return p, args.Error(1)
}

func (m *MockPreferencesRepository) Save(ctx context.Context, profileID uuid.UUID, prefs domain.Preferences) error {
	args := m.Called(ctx, profileID, prefs)
	return args.Error(0)
}

func (m *MockPreferencesRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	args := m.Called(ctx, profileID)
	return args.Error(0)
}

type MockChartCache struct{ mock.Mock }

func (m *MockChartCache) Get(key string) (series.ChartModel, bool) {
	args := m.Called(key)
	model, _ := args.Get(0).(series.ChartModel)
	return model, args.Bool(1)
}

func (m *MockChartCache) Set(key string, model series.ChartModel) {
	m.Called(key, model)
}
