// Package retention removes old completed tasks on a schedule. The sweep is
// opt-in: it only runs when RETENTION_DAYS is set to a positive value.
package retention

import (
	"context"
	"log/slog"

	"github.com/crucial707/taskdeck/internal/metrics"
	"github.com/robfig/cron/v3"
)

// Purger is the slice of the task store the sweep needs.
type Purger interface {
	PurgeCompletedBefore(ctx context.Context, days int) (int64, error)
}

// Sweeper deletes completed tasks older than Days once per night.
type Sweeper struct {
	Tasks Purger
	Days  int

	cron *cron.Cron
}

func NewSweeper(tasks Purger, days int) *Sweeper {
	return &Sweeper{Tasks: tasks, Days: days}
}

// Start registers the nightly job and starts the cron loop in its own
// goroutine. Returns immediately; call Stop to shut the loop down.
func (s *Sweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("@daily", s.Sweep); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("retention sweep scheduled", "days", s.Days)
	return nil
}

// Stop halts the cron loop. A sweep already running finishes on its own.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one purge pass. Errors are logged, never fatal; the next run
// retries from scratch.
func (s *Sweeper) Sweep() {
	n, err := s.Tasks.PurgeCompletedBefore(context.Background(), s.Days)
	if err != nil {
		slog.Error("retention sweep failed", "error", err)
		return
	}
	if n > 0 {
		metrics.AddTasksPurged(n)
	}
	slog.Info("retention sweep done", "purged", n, "days", s.Days)
}
