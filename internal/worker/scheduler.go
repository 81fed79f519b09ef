package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one periodic unit of work. RunOnce reports how many items it handled.
type Job interface {
	RunOnce(ctx context.Context) (int, error)
}

// Scheduler runs registered jobs on cron "@every" schedules. A run that is
// still going when its next slot arrives is skipped, so one job never
// overlaps itself.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Register schedules job every interval. Intervals below one second are
// rounded up to one second by cron.
func (s *Scheduler) Register(name string, every time.Duration, job Job) error {
	if every <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", name, every)
	}
	spec := "@every " + every.String()
	if _, err := s.cron.AddFunc(spec, func() { s.run(name, job) }); err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}
	slog.Info("job registered", "job", name, "schedule", spec)
	return nil
}

func (s *Scheduler) run(name string, job Job) {
	if s.ctx.Err() != nil {
		return
	}
	n, err := job.RunOnce(s.ctx)
	if err != nil && s.ctx.Err() == nil {
		slog.ErrorContext(s.ctx, "job failed", "job", name, "handled", n, "error", err)
	}
}

func (s *Scheduler) Start(context.Context) error {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop cancels running jobs and waits for them to return, bounded by ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
