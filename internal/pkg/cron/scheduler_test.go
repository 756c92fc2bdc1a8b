package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
)

type reconcileRecorder struct {
	duty.DutyService
	calls []time.Time
}

func (r *reconcileRecorder) Reconcile(ctx context.Context, now time.Time) (duty.ReconcileResult, error) {
	r.calls = append(r.calls, now)
	return duty.ReconcileResult{SweptAt: now, Examined: 2, MarkedAbsent: 1}, nil
}

func TestRegisterTriggersRunOnce(t *testing.T) {
	t.Parallel()

	clk := &clock.Fixed{T: time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)}
	recorder := &reconcileRecorder{}

	scheduler := NewScheduler(clk)
	jobs := NewReconcileJobs(recorder, clk)
	jobs.RegisterTriggers(scheduler, 13, 0, 18, 0)

	scheduler.RunOnce(t.Context())

	// Both sweeps share the same reconcile entry point
	require.Len(t, recorder.calls, 2)
	assert.Equal(t, clk.Now(), recorder.calls[0])
	assert.Equal(t, clk.Now(), recorder.calls[1])
}

func TestSchedulerStartStop(t *testing.T) {
	t.Parallel()

	clk, err := clock.New("UTC")
	require.NoError(t, err)

	scheduler := NewScheduler(clk)
	scheduler.AddTrigger("noop", 0, 0, func(ctx context.Context) error { return nil })

	scheduler.Start()
	scheduler.Stop()
}
