package dashboard

import (
	"context"
	"errors"
	"fmt"
	"fxdash/internal/adapters"
	"time"

	"github.com/sirupsen/logrus"
)

const syncRequestTimeout = 10 * time.Second

// SyncCurrencies refreshes the currency catalog from the upstream, persists it
// and swaps it into the validator.
func SyncCurrencies(ctx context.Context, execID string, client adapters.RateClient, repo adapters.CurrencyRepository, validator *CurrencyValidator) error {
	// STEP 1: fetch the catalog, bounded so a slow upstream does not pile up runs
	reqCtx, cancel := context.WithTimeout(ctx, syncRequestTimeout)
	fetched, err := client.GetCurrencies(reqCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to fetch currencies: %w", err)
	}
	if len(fetched) == 0 {
		return errors.New("upstream returned an empty currency list")
	}

	// STEP 2: persist, then read back so the validator sees exactly what is stored
	if err = repo.Upsert(ctx, fetched); err != nil {
		return fmt.Errorf("failed to store currencies: %w", err)
	}
	stored, err := repo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload currencies: %w", err)
	}

	// STEP 3: swap the catalog
	if !validator.Replace(stored) {
		logrus.Warnf("Stored currency list is empty, keeping previous catalog; execID: %s", execID)
		return nil
	}
	logrus.Infof("%d currencies synced; execID: %s", len(stored), execID)
	return nil
}
