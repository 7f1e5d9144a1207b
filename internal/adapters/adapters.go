package adapters

import (
	"context"
	"fxdash/internal/domain"
	"fxdash/internal/series"
	"time"

	"github.com/google/uuid"
)

type RateClient interface {
	GetSeries(ctx context.Context, base string, quotes []string, start, end time.Time) (domain.RateSeries, error)
	GetCurrencies(ctx context.Context) (map[string]string, error)
}

type CurrencyRepository interface {
	List(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, currencies map[string]string) error
}

type PreferencesRepository interface {
	Get(ctx context.Context, profileID uuid.UUID) (domain.StoredPreferences, error)
	Save(ctx context.Context, profileID uuid.UUID, prefs domain.Preferences) error
	Delete(ctx context.Context, profileID uuid.UUID) error
}

type ChartCache interface {
	Get(key string) (series.ChartModel, bool)
	Set(key string, model series.ChartModel)
}
