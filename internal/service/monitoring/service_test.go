package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
	"github.com/scholarduty/duty-backend-go/internal/repository/memory"
)

const (
	testScholarID  = "b2c5e8a1-0000-4000-8000-000000000001"
	testSemesterID = "sem-2026-2"
	testThreshold  = 3
)

func newTestService(t *testing.T, now time.Time) (monitoring.MonitoringService, *memory.Store, *clock.Fixed) {
	t.Helper()

	store := memory.NewStore()
	store.SeedScholar(scholar.Scholar{
		ID:         testScholarID,
		FullName:   "Maria Santos",
		SemesterID: testSemesterID,
	})

	clk := &clock.Fixed{T: now}
	svc := NewMonitoringService(
		store,
		clk,
		testThreshold,
		store.EntryRepository(),
		store.BlockRepository(),
		store.ScholarRepository(),
	)
	return svc, store, clk
}

func day(offset int) time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func violation(reason string) monitoring.RecordRequest {
	return monitoring.RecordRequest{
		ScholarID:       testScholarID,
		SemesterID:      testSemesterID,
		HasViolation:    true,
		ViolationReason: &reason,
	}
}

func TestRecordMonitoringWithoutViolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, day(0))

	resp, err := svc.RecordMonitoring(ctx, monitoring.RecordRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.EntryID)
	assert.Equal(t, 0, resp.TotalViolations)
	assert.False(t, resp.Blocked)
}

func TestRecordMonitoringSemesterMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, _ := newTestService(t, day(0))

	req := violation("no proper uniform")
	req.SemesterID = "sem-2025-1"
	_, err := svc.RecordMonitoring(ctx, req)
	assert.ErrorIs(t, err, duty.ErrSemesterMismatch)

	// No entry lands under either semester
	entries, err := svc.ListEntries(ctx, testScholarID, testSemesterID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	total, err := store.EntryRepository().SumViolations(ctx, testScholarID, "sem-2025-1")
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestRecordMonitoringRejectsSecondEntrySameDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, day(0))

	_, err := svc.RecordMonitoring(ctx, violation("no proper uniform"))
	require.NoError(t, err)

	_, err = svc.RecordMonitoring(ctx, monitoring.RecordRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	assert.ErrorIs(t, err, monitoring.ErrAlreadyMonitoredToday)
}

func TestRecordMonitoringBlocksAtThreshold(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, clk := newTestService(t, day(0))

	for i := 0; i < testThreshold-1; i++ {
		clk.Set(day(i))
		resp, err := svc.RecordMonitoring(ctx, violation("left post early"))
		require.NoError(t, err)
		assert.Equal(t, i+1, resp.TotalViolations)
		assert.False(t, resp.Blocked)
	}

	clk.Set(day(testThreshold - 1))
	resp, err := svc.RecordMonitoring(ctx, violation("left post early"))
	require.NoError(t, err)
	assert.Equal(t, testThreshold, resp.TotalViolations)
	assert.True(t, resp.Blocked)

	block, err := store.BlockRepository().GetByScholar(ctx, testScholarID, testSemesterID)
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, clock.DateOf(day(testThreshold-1)), block.DateBlocked)
}

func TestRecordMonitoringDoesNotDuplicateBlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, day(0))

	for i := 0; i < testThreshold+1; i++ {
		clk.Set(day(i))
		resp, err := svc.RecordMonitoring(ctx, violation("unexcused absence"))
		require.NoError(t, err)
		if i >= testThreshold-1 {
			assert.True(t, resp.Blocked)
		}
	}
}

func TestRevertViolationUnblocksUnconditionally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, clk := newTestService(t, day(0))

	var lastEntryID string
	for i := 0; i < testThreshold; i++ {
		clk.Set(day(i))
		resp, err := svc.RecordMonitoring(ctx, violation("left post early"))
		require.NoError(t, err)
		lastEntryID = resp.EntryID
	}

	resp, err := svc.RevertViolation(ctx, monitoring.RevertRequest{EntryID: lastEntryID})
	require.NoError(t, err)
	assert.True(t, resp.BlockRemoved)

	block, err := store.BlockRepository().GetByScholar(ctx, testScholarID, testSemesterID)
	require.NoError(t, err)
	assert.Nil(t, block)

	total, err := store.EntryRepository().SumViolations(ctx, testScholarID, testSemesterID)
	require.NoError(t, err)
	assert.Equal(t, testThreshold-1, total)

	entry, err := store.EntryRepository().GetByID(ctx, lastEntryID)
	require.NoError(t, err)
	assert.False(t, entry.HasViolation)
	assert.Nil(t, entry.ViolationReason)
	assert.Zero(t, entry.ViolationCount)
}

func TestRevertViolationWithoutBlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, day(0))

	resp, err := svc.RecordMonitoring(ctx, violation("no proper uniform"))
	require.NoError(t, err)

	revert, err := svc.RevertViolation(ctx, monitoring.RevertRequest{EntryID: resp.EntryID})
	require.NoError(t, err)
	assert.False(t, revert.BlockRemoved)
}

func TestRevertUnknownEntry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, day(0))

	_, err := svc.RevertViolation(ctx, monitoring.RevertRequest{EntryID: "missing"})
	assert.ErrorIs(t, err, monitoring.ErrEntryNotFound)
}

func TestListEntries(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, day(0))

	_, err := svc.RecordMonitoring(ctx, violation("left post early"))
	require.NoError(t, err)

	clk.Set(day(1))
	_, err = svc.RecordMonitoring(ctx, monitoring.RecordRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	entries, err := svc.ListEntries(ctx, testScholarID, testSemesterID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first
	assert.Equal(t, "2026-03-03", entries[0].Date)
	assert.False(t, entries[0].HasViolation)
	assert.Equal(t, "2026-03-02", entries[1].Date)
	assert.True(t, entries[1].HasViolation)
}
