package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fxdash/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PreferencesRepository struct {
	pool *pgxpool.Pool
}

// Get returns domain.ErrPreferencesNotFound when nothing is stored and wraps
// domain.ErrInvalidPreferences when the stored payload cannot be decoded.
func (r *PreferencesRepository) Get(ctx context.Context, profileID uuid.UUID) (domain.StoredPreferences, error) {
	const q = `
		select payload, updated_at
		from user_preferences
		where profile_id = $1;
	`

	stored := domain.StoredPreferences{ProfileID: profileID}
	var payload []byte
	if err := r.pool.QueryRow(ctx, q, profileID).Scan(&payload, &stored.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.StoredPreferences{}, domain.ErrPreferencesNotFound
		}
		return domain.StoredPreferences{}, fmt.Errorf("failed to select preferences for %q: %w", profileID, err)
	}

	if err := json.Unmarshal(payload, &stored.Preferences); err != nil {
		return domain.StoredPreferences{}, fmt.Errorf("%w: failed to decode payload for %q: %v", domain.ErrInvalidPreferences, profileID, err)
	}
	return stored, nil
}

func (r *PreferencesRepository) Save(ctx context.Context, profileID uuid.UUID, prefs domain.Preferences) error {
	payloadJSON, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	const q = `
		insert into user_preferences(profile_id, payload, updated_at)
		values ($1, $2::jsonb, now())
		on conflict (profile_id) do update
		set payload = excluded.payload, updated_at = now();
	`
	if _, err = r.pool.Exec(ctx, q, profileID, json.RawMessage(payloadJSON)); err != nil {
		return fmt.Errorf("failed to save preferences for %q: %w", profileID, err)
	}
	return nil
}

func (r *PreferencesRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from user_preferences where profile_id = $1`, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete preferences for %q: %w", profileID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPreferencesNotFound
	}
	return nil
}

func NewPreferencesRepository(pool *pgxpool.Pool) *PreferencesRepository {
	return &PreferencesRepository{pool: pool}
}
