package services

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// RolloverScheduler fires ArchiveAndReset at local midnight. A missed
// boundary (process suspended or stopped across one or more midnights) is
// caught up on Start: the day the ledger was last active is archived once,
// skipped days get no backfilled entries since no meals exist for them.
type RolloverScheduler struct {
	ledger *LedgerService
	log    *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

func NewRolloverScheduler(ledger *LedgerService, log *zap.Logger) *RolloverScheduler {
	return &RolloverScheduler{ledger: ledger, log: log, now: time.Now}
}

// Start runs catch-up, then schedules the daily midnight job. Calling
// Start on a running scheduler replaces the schedule; timers are never
// duplicated.
func (s *RolloverScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		s.cron.Stop()
		s.started = false
	}

	if err := s.catchUp(ctx); err != nil {
		return err
	}

	c := cron.New()
	if _, err := c.AddFunc("0 0 * * *", s.fire); err != nil {
		return err
	}
	c.Start()
	s.cron = c
	s.started = true
	s.log.Info("rollover scheduler started")
	return nil
}

// Stop cancels the schedule; the job will not refire after teardown.
func (s *RolloverScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		s.cron.Stop()
		s.started = false
		s.log.Info("rollover scheduler stopped")
	}
}

func (s *RolloverScheduler) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.ledger.ArchiveAndReset(ctx); err != nil {
		s.log.Error("midnight rollover failed", zap.Error(err))
	}
}

// catchUp archives the day the ledger still holds if the wall clock has
// moved past it. Multi-day gaps collapse to that single archive.
func (s *RolloverScheduler) catchUp(ctx context.Context) error {
	current := s.ledger.CurrentDate()
	today := DateKey(s.now())
	if current == "" || current == today {
		return nil
	}
	s.log.Info("catching up missed rollover",
		zap.String("lastActive", current), zap.String("today", today))
	return s.ledger.ArchiveAndReset(ctx)
}
