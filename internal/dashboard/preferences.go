package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxdash/internal/adapters"
	"fxdash/internal/domain"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PreferencesService stores per-profile dashboard settings. Reads never fail
// because of bad stored data: each field falls back to its default.
type PreferencesService struct {
	repo     adapters.PreferencesRepository
	validate *validator.Validate
	defaults domain.Preferences
}

func (s *PreferencesService) Defaults() domain.Preferences {
	return domain.Preferences{
		DateRange:     s.defaults.DateRange,
		SelectedPairs: slices.Clone(s.defaults.SelectedPairs),
	}
}

func (s *PreferencesService) Get(ctx context.Context, profileID uuid.UUID) (domain.Preferences, error) {
	stored, err := s.repo.Get(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesNotFound) || errors.Is(err, domain.ErrInvalidPreferences) {
			return s.Defaults(), nil
		}
		return domain.Preferences{}, err
	}
	return s.sanitize(profileID, stored.Preferences), nil
}

// Save rejects invalid input with domain.ErrInvalidPreferences. Column sizing
// is dropped from the grid state before it is stored.
func (s *PreferencesService) Save(ctx context.Context, profileID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error) {
	if prefs.SelectedPairs == nil {
		prefs.SelectedPairs = []string{}
	}
	if err := s.validate.Struct(prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("%w: %v", domain.ErrInvalidPreferences, err)
	}
	grid, err := stripColumnSizing(prefs.GridState)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("%w: grid_state: %v", domain.ErrInvalidPreferences, err)
	}
	prefs.GridState = grid

	if err = s.repo.Save(ctx, profileID, prefs); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}

func (s *PreferencesService) Delete(ctx context.Context, profileID uuid.UUID) error {
	return s.repo.Delete(ctx, profileID)
}

func (s *PreferencesService) sanitize(profileID uuid.UUID, prefs domain.Preferences) domain.Preferences {
	out := prefs
	if err := s.validate.Var(prefs.DateRange, "required,oneof=6m 1y 2y"); err != nil {
		logrus.WithField("profile_id", profileID).Warn("Stored date range is invalid, using default")
		out.DateRange = s.defaults.DateRange
	}
	if prefs.SelectedPairs == nil {
		out.SelectedPairs = slices.Clone(s.defaults.SelectedPairs)
	} else if err := s.validate.Var(prefs.SelectedPairs, "dive,required,pair_key"); err != nil {
		logrus.WithField("profile_id", profileID).Warn("Stored pair selection is invalid, using default")
		out.SelectedPairs = slices.Clone(s.defaults.SelectedPairs)
	}
	if len(prefs.GridState) > 0 && !isJSONObject(prefs.GridState) {
		out.GridState = nil
	}
	return out
}

func stripColumnSizing(raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var state map[string]json.RawMessage
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errors.New("must be a JSON object")
	}
	colRaw, ok := state["columnState"]
	if !ok {
		return raw, nil
	}
	var columnState map[string]json.RawMessage
	if err := json.Unmarshal(colRaw, &columnState); err != nil {
		// not an object, nothing to strip
		return raw, nil
	}
	if _, ok = columnState["columnSizing"]; !ok {
		return raw, nil
	}
	delete(columnState, "columnSizing")

	encoded, err := json.Marshal(columnState)
	if err != nil {
		return nil, err
	}
	state["columnState"] = encoded
	return json.Marshal(state)
}

func isJSONObject(raw json.RawMessage) bool {
	var obj map[string]json.RawMessage
	return json.Unmarshal(raw, &obj) == nil && obj != nil
}

// NewPreferencesService accepts pair keys built from base and quotes
// ("EUR_USD", "USD_EUR", ...). The default selection is all of them.
func NewPreferencesService(repo adapters.PreferencesRepository, base string, quotes []string, defaultRange DateRange) *PreferencesService {
	pairKeys := domain.PairKeys(base, quotes)

	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("pair_key", func(fl validator.FieldLevel) bool {
		return slices.Contains(pairKeys, fl.Field().String())
	})

	if defaultRange == "" {
		defaultRange = DefaultRange
	}
	return &PreferencesService{
		repo:     repo,
		validate: v,
		defaults: domain.Preferences{DateRange: string(defaultRange), SelectedPairs: pairKeys},
	}
}
