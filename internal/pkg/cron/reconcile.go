package cron

import (
	"context"
	"log/slog"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
)

// Sweep trigger names. The morning sweep fires after all morning-only
// windows have closed, the evening sweep after afternoon and full-day
// windows have closed.
const (
	TriggerMorningSweep = "morning_sweep"
	TriggerEveningSweep = "evening_sweep"
)

type ReconcileJobs struct {
	dutyService duty.DutyService
	clk         clock.Clock
}

func NewReconcileJobs(dutyService duty.DutyService, clk clock.Clock) *ReconcileJobs {
	return &ReconcileJobs{
		dutyService: dutyService,
		clk:         clk,
	}
}

// RegisterTriggers wires the two daily sweeps at their configured times
func (j *ReconcileJobs) RegisterTriggers(scheduler *Scheduler, morningHour, morningMinute, eveningHour, eveningMinute int) {
	scheduler.AddTrigger(TriggerMorningSweep, morningHour, morningMinute, j.Sweep)
	scheduler.AddTrigger(TriggerEveningSweep, eveningHour, eveningMinute, j.Sweep)
}

// Sweep marks sessions absent once their duty window has definitively
// closed. Both triggers run the same re-evaluation against "now", so a
// skipped run is caught by the next one.
func (j *ReconcileJobs) Sweep(ctx context.Context) error {
	now := j.clk.Now()
	slog.Info("Cron: Starting absence reconciliation sweep")

	result, err := j.dutyService.Reconcile(ctx, now)
	if err != nil {
		return err
	}

	slog.Info("Cron: Absence reconciliation sweep finished",
		"examined", result.Examined,
		"marked_absent", result.MarkedAbsent)
	return nil
}
