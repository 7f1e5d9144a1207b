package dashboard

import (
	"context"
	"fxdash/internal/adapters"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultSyncInterval = time.Hour

type Scheduler struct {
	client       adapters.RateClient
	currencyRepo adapters.CurrencyRepository
	validator    *CurrencyValidator
	syncInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

// Start schedules the currency sync, first run immediately, and stops it when
// ctx is canceled.
func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if syncErr := SyncCurrencies(jobCtx, execID, s.client, s.currencyRepo, s.validator); syncErr != nil {
			logrus.Errorf("Sync currencies job %s failed: %v", execID, syncErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.syncInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(client adapters.RateClient, currencyRepo adapters.CurrencyRepository, validator *CurrencyValidator, syncInterval time.Duration) *Scheduler {
	if syncInterval <= 0 {
		syncInterval = defaultSyncInterval
	}
	return &Scheduler{
		client:       client,
		currencyRepo: currencyRepo,
		validator:    validator,
		syncInterval: syncInterval,
	}
}
