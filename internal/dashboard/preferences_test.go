package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fxdash/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var allPairs = []string{"EUR_USD", "USD_EUR", "EUR_CAD", "CAD_EUR"}

func newPrefsService(repo *MockPreferencesRepository) *PreferencesService {
	return NewPreferencesService(repo, "EUR", []string{"USD", "CAD"}, Range1Y)
}

// --- Get ---

func TestPreferencesService_Get_NotFoundReturnsDefaults(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(domain.StoredPreferences{}, domain.ErrPreferencesNotFound).Once()

	prefs, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	require.Equal(t, "1y", prefs.DateRange)
	require.Equal(t, allPairs, prefs.SelectedPairs)
	require.Nil(t, prefs.GridState)
	repo.AssertExpectations(t)
}

func TestPreferencesService_Get_UndecodableReturnsDefaults(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).
		Return(domain.StoredPreferences{}, errors.Join(domain.ErrInvalidPreferences, errors.New("bad json"))).Once()

	prefs, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, svc.Defaults(), prefs)
}

func TestPreferencesService_Get_RepositoryError(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	repo.On("Get", mock.Anything, id).Return(domain.StoredPreferences{}, errors.New("db down")).Once()

	_, err := svc.Get(context.Background(), id)
	require.EqualError(t, err, "db down")
}

func TestPreferencesService_Get_ValidStoredValues(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	stored := domain.Preferences{
		DateRange:     "6m",
		SelectedPairs: []string{"USD_EUR"},
		GridState:     json.RawMessage(`{"sort":{}}`),
	}
	repo.On("Get", mock.Anything, id).Return(domain.StoredPreferences{ProfileID: id, Preferences: stored}, nil).Once()

	prefs, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, stored, prefs)
}

func TestPreferencesService_Get_FallsBackPerField(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	stored := domain.Preferences{
		DateRange:     "10y",
		SelectedPairs: []string{"EUR_USD", "EUR_JPY"},
		GridState:     json.RawMessage(`[1,2]`),
	}
	repo.On("Get", mock.Anything, id).Return(domain.StoredPreferences{ProfileID: id, Preferences: stored}, nil).Once()

	prefs, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	require.Equal(t, "1y", prefs.DateRange)
	require.Equal(t, allPairs, prefs.SelectedPairs)
	require.Nil(t, prefs.GridState)
}

func TestPreferencesService_Get_EmptySelectionIsKept(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	stored := domain.Preferences{DateRange: "2y", SelectedPairs: []string{}}
	repo.On("Get", mock.Anything, id).Return(domain.StoredPreferences{ProfileID: id, Preferences: stored}, nil).Once()

	prefs, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, []string{}, prefs.SelectedPairs)
}

func TestPreferencesService_Defaults_ReturnsCopy(t *testing.T) {
	svc := newPrefsService(new(MockPreferencesRepository))

	d := svc.Defaults()
	d.SelectedPairs[0] = "XXX"

	require.Equal(t, allPairs, svc.Defaults().SelectedPairs)
}

// --- Save ---

func TestPreferencesService_Save_StripsColumnSizing(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	in := domain.Preferences{
		DateRange:     "2y",
		SelectedPairs: []string{"EUR_CAD"},
		GridState:     json.RawMessage(`{"columnState":{"columnSizing":{"date":120},"columnOrder":["date"]},"sort":{}}`),
	}

	var saved domain.Preferences
	repo.On("Save", mock.Anything, id, mock.AnythingOfType("domain.Preferences")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.Preferences) }).
		Return(nil).Once()

	out, err := svc.Save(context.Background(), id, in)
	require.NoError(t, err)

	require.JSONEq(t, `{"columnState":{"columnOrder":["date"]},"sort":{}}`, string(saved.GridState))
	require.Equal(t, saved, out)
	repo.AssertExpectations(t)
}

func TestPreferencesService_Save_KeepsGridWithoutSizing(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	grid := json.RawMessage(`{"filter":{"filterModel":{}}}`)
	in := domain.Preferences{DateRange: "1y", SelectedPairs: []string{"EUR_USD"}, GridState: grid}

	repo.On("Save", mock.Anything, id, in).Return(nil).Once()

	out, err := svc.Save(context.Background(), id, in)
	require.NoError(t, err)
	require.Equal(t, grid, out.GridState)
	repo.AssertExpectations(t)
}

func TestPreferencesService_Save_NilSelectionStoredAsEmpty(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()

	repo.On("Save", mock.Anything, id, domain.Preferences{DateRange: "6m", SelectedPairs: []string{}}).Return(nil).Once()

	_, err := svc.Save(context.Background(), id, domain.Preferences{DateRange: "6m"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestPreferencesService_Save_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		prefs domain.Preferences
	}{
		{"missing range", domain.Preferences{SelectedPairs: []string{"EUR_USD"}}},
		{"unknown range", domain.Preferences{DateRange: "3m"}},
		{"unknown pair", domain.Preferences{DateRange: "1y", SelectedPairs: []string{"EUR_JPY"}}},
		{"lowercase pair", domain.Preferences{DateRange: "1y", SelectedPairs: []string{"eur_usd"}}},
		{"empty pair", domain.Preferences{DateRange: "1y", SelectedPairs: []string{""}}},
		{"grid not an object", domain.Preferences{DateRange: "1y", GridState: json.RawMessage(`"wide"`)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockPreferencesRepository)
			svc := newPrefsService(repo)

			_, err := svc.Save(context.Background(), uuid.New(), tc.prefs)

			require.ErrorIs(t, err, domain.ErrInvalidPreferences)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPreferencesService_Save_RepositoryError(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	repo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := svc.Save(context.Background(), uuid.New(), domain.Preferences{DateRange: "1y"})
	require.EqualError(t, err, "db down")
}

// --- Delete ---

func TestPreferencesService_Delete(t *testing.T) {
	repo := new(MockPreferencesRepository)
	svc := newPrefsService(repo)
	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(domain.ErrPreferencesNotFound).Once()

	require.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrPreferencesNotFound)
	repo.AssertExpectations(t)
}

func TestStripColumnSizing(t *testing.T) {
	got, err := stripColumnSizing(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = stripColumnSizing(json.RawMessage(`null`))
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = stripColumnSizing(json.RawMessage(`{"columnState":"x"}`))
	require.NoError(t, err)
	require.JSONEq(t, `{"columnState":"x"}`, string(got))

	_, err = stripColumnSizing(json.RawMessage(`[]`))
	require.Error(t, err)
}
