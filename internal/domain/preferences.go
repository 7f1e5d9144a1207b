package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Preferences is what the dashboard persists between visits.
type Preferences struct {
	DateRange     string          `json:"date_range" validate:"required,oneof=6m 1y 2y"`
	SelectedPairs []string        `json:"selected_pairs" validate:"dive,required,pair_key"`
	GridState     json.RawMessage `json:"grid_state,omitempty"`
}

type StoredPreferences struct {
	ProfileID   uuid.UUID
	Preferences Preferences
	UpdatedAt   time.Time
}
