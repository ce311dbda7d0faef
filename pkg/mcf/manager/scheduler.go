package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers periodic document reloads on a cron schedule. It
// covers sources where filesystem notification is unavailable or
// unreliable, such as network mounts.
type Scheduler struct {
	manager  *Manager
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewScheduler creates a scheduler that reloads through m.
//
// Common cron expressions:
//   - "* * * * *"     - Every minute
//   - "*/5 * * * *"   - Every 5 minutes
//   - "0 * * * *"     - Hourly
func NewScheduler(m *Manager, schedule string) *Scheduler {
	return &Scheduler{
		manager:  m,
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "mcf.scheduler"),
	}
}

// Start begins the scheduled reloads. If the schedule is empty, the
// scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("reload schedule not configured, skipping scheduler")
		return nil
	}

	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	if _, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.manager.Reload(); err != nil {
			s.logger.Error("scheduled reload failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule reload: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("reload scheduler started", "schedule", s.schedule)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts scheduled reloads. A reload already in flight finishes.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()
	s.running = false

	s.logger.Info("reload scheduler stopped")
}
