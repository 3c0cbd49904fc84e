// Package scheduler runs background maintenance, currently the retention
// sweep that deletes stored articles past their maximum age.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
)

//go:generate moq -out mocks/sweep_store.go -pkg mocks -skip-ensure -fmt goimports . SweepStore

// SweepStore deletes aged-out articles
type SweepStore interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Scheduler owns the background workers. Start launches them, Stop waits
// for a clean exit.
type Scheduler struct {
	store         SweepStore
	maxAge        time.Duration
	sweepInterval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
	now    func() time.Time
}

// Params holds scheduler settings
type Params struct {
	Store         SweepStore
	MaxAge        time.Duration // articles older than this get deleted
	SweepInterval time.Duration
}

// New creates a scheduler
func New(params Params) *Scheduler {
	if params.MaxAge <= 0 {
		params.MaxAge = 30 * 24 * time.Hour
	}
	if params.SweepInterval <= 0 {
		params.SweepInterval = 24 * time.Hour
	}
	return &Scheduler{
		store:         params.Store,
		maxAge:        params.MaxAge,
		sweepInterval: params.SweepInterval,
		now:           time.Now,
	}
}

// Start begins the background workers
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.retentionWorker(ctx)

	lgr.Printf("[INFO] scheduler started, retention %v, sweep every %v", s.maxAge, s.sweepInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// retentionWorker sweeps on start and then on every tick
func (s *Scheduler) retentionWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	cutoff := s.now().Add(-s.maxAge)
	deleted, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		lgr.Printf("[ERROR] retention sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		lgr.Printf("[INFO] retention sweep removed %d articles older than %s", deleted, cutoff.Format(time.RFC3339))
	}
}
