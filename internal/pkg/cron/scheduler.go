package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
)

// Trigger is a named job that fires at a fixed local wall-clock time every day
type Trigger struct {
	Name   string
	Hour   int
	Minute int
	Fn     func(ctx context.Context) error
}

// Scheduler runs wall-clock triggers in the configured time zone
type Scheduler struct {
	triggers []Trigger
	clk      clock.Clock
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewScheduler creates a scheduler whose triggers fire in clk's zone
func NewScheduler(clk clock.Clock) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		triggers: make([]Trigger, 0),
		clk:      clk,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// AddTrigger registers a named daily trigger
func (s *Scheduler) AddTrigger(name string, hour, minute int, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.triggers = append(s.triggers, Trigger{
		Name:   name,
		Hour:   hour,
		Minute: minute,
		Fn:     fn,
	})
	slog.Info("Cron trigger registered", "name", name, "hour", hour, "minute", minute)
}

// Start begins running all triggers
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, trigger := range s.triggers {
		s.wg.Add(1)
		go s.runTrigger(trigger)
	}

	slog.Info("Cron scheduler started", "trigger_count", len(s.triggers))
}

// Stop gracefully stops all triggers
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

// runTrigger sleeps until the trigger's next wall-clock instant, fires, and
// repeats. A missed firing is not replayed; the trigger's own condition is
// expected to re-evaluate state against "now" on the next run.
func (s *Scheduler) runTrigger(trigger Trigger) {
	defer s.wg.Done()

	for {
		wait := s.nextFiring(trigger).Sub(s.clk.Now())
		timer := time.NewTimer(wait)

		select {
		case <-s.ctx.Done():
			timer.Stop()
			slog.Info("Cron trigger stopping", "name", trigger.Name)
			return
		case <-timer.C:
			s.executeTrigger(trigger)
		}
	}
}

// nextFiring computes the next occurrence of the trigger's wall-clock time
func (s *Scheduler) nextFiring(trigger Trigger) time.Time {
	now := s.clk.Now()
	next := time.Date(now.Year(), now.Month(), now.Day(), trigger.Hour, trigger.Minute, 0, 0, s.clk.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// executeTrigger executes a trigger and logs results
func (s *Scheduler) executeTrigger(trigger Trigger) {
	start := time.Now()
	slog.Debug("Cron trigger starting", "name", trigger.Name)

	if err := trigger.Fn(s.ctx); err != nil {
		slog.Error("Cron trigger failed", "name", trigger.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron trigger completed", "name", trigger.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all triggers once (useful for testing)
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, trigger := range s.triggers {
		if err := trigger.Fn(ctx); err != nil {
			slog.Error("Cron trigger failed", "name", trigger.Name, "error", err)
		}
	}
}
