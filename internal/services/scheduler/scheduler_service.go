// Package scheduler runs scrapes on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/models"
)

// RunFunc executes one scrape run.
type RunFunc func(ctx context.Context) (*models.ScrapeRun, error)

// Service triggers scrape runs from a cron schedule. Runs never overlap: a
// tick that fires while a run is in progress is skipped.
type Service struct {
	run     RunFunc
	cron    *cron.Cron
	logger  arbor.ILogger
	mu      sync.Mutex // Protects busy
	running bool
	busy    bool
}

// NewService creates a new scheduler service
func NewService(run RunFunc, logger arbor.ILogger) *Service {
	return &Service{
		run:    run,
		cron:   cron.New(),
		logger: logger,
	}
}

// Start begins the scheduler with the given cron expression
func (s *Service) Start(cronExpr string) error {
	if s.running {
		return fmt.Errorf("scheduler already running")
	}
	if cronExpr == "" {
		return fmt.Errorf("cron expression is required")
	}

	if _, err := s.cron.AddFunc(cronExpr, s.runScheduledScrape); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info().Str("cron_expr", cronExpr).Msg("Scheduler started")
	return nil
}

// Stop halts the scheduler. A scrape already in progress finishes.
func (s *Service) Stop() error {
	if !s.running {
		return nil
	}
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.running = false
	s.logger.Info().Msg("Scheduler stopped")
	return nil
}

func (s *Service) runScheduledScrape() {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		s.logger.Warn().Msg("Previous scrape still running, skipping scheduled run")
		return
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	if _, err := s.run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("Scheduled scrape failed")
	}
}
