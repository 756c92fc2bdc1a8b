package duty

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
	"github.com/scholarduty/duty-backend-go/internal/repository/memory"
)

const (
	testScholarID  = "b2c5e8a1-0000-4000-8000-000000000001"
	testSemesterID = "sem-2026-2"
)

// monday returns 2026-03-02 (a Monday) at the given local time
func monday(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func newTestService(t *testing.T, slotIDs []string, now time.Time) (duty.DutyService, *memory.Store, *clock.Fixed) {
	t.Helper()

	store := memory.NewStore()
	store.SeedSlots(schedule.DefaultCatalog())
	store.SeedScholar(scholarFixture(slotIDs))

	clk := &clock.Fixed{T: now}
	svc := NewDutyService(
		store,
		clk,
		duty.DefaultGracePeriod,
		store.SessionRepository(),
		store.ScholarRepository(),
		store.SlotRepository(),
	)
	return svc, store, clk
}

func scholarFixture(slotIDs []string) scholar.Scholar {
	return scholar.Scholar{
		ID:         testScholarID,
		FullName:   "Maria Santos",
		SemesterID: testSemesterID,
		SlotIDs:    slotIDs,
	}
}

func TestIdentifyChecksIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	assert.Equal(t, duty.ActionCheckIn, resp.Action)
	assert.True(t, resp.WindowOpen)
	assert.Equal(t, "Maria Santos", resp.ScholarName)
	require.NotNil(t, resp.Session)
	assert.Equal(t, string(duty.StatusPresent), resp.Session.Status)
	assert.Equal(t, "2026-03-02 08:00:00", resp.Session.AdjustedTimeIn)
	assert.Equal(t, "2026-03-02 08:05:00", resp.Session.TimeIn)
}

func TestIdentifyLateCheckInKeepsRawTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, []string{"MON-FULL"}, monday(8, 20))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Session)
	assert.Equal(t, string(duty.StatusLate), resp.Session.Status)
	assert.Equal(t, "2026-03-02 08:20:00", resp.Session.AdjustedTimeIn)
}

func TestIdentifyOutsideWindowIsLookupOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, _ := newTestService(t, []string{"MON-AM"}, monday(12, 30))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	assert.Equal(t, duty.ActionCheckIn, resp.Action)
	assert.False(t, resp.WindowOpen)
	assert.Nil(t, resp.Session)

	open, err := store.SessionRepository().GetOpenSession(ctx, testScholarID, monday(0, 0))
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestIdentifyNonDutyDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 2026-03-07 is a Saturday
	svc, _, _ := newTestService(t, []string{"MON-AM"}, monday(9, 0).AddDate(0, 0, 5))

	_, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	assert.ErrorIs(t, err, schedule.ErrNoDutyToday)
}

func TestIdentifySemesterMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, []string{"MON-AM"}, monday(9, 0))

	_, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: "sem-2025-1",
	})
	assert.ErrorIs(t, err, duty.ErrSemesterMismatch)
}

func TestIdentifyInfersCheckOutWhenSessionOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	_, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	clk.Set(monday(11, 0))
	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)

	assert.Equal(t, duty.ActionCheckOut, resp.Action)
	require.NotNil(t, resp.Session)
}

func TestConcurrentCheckInExactlyOneSucceeds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, store, _ := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	session := duty.Session{
		ScholarID:      testScholarID,
		SemesterID:     testSemesterID,
		Date:           monday(0, 0),
		TimeIn:         monday(8, 5),
		AdjustedTimeIn: monday(8, 0),
		Status:         duty.StatusPresent,
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.SessionRepository().Create(ctx, session)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, duplicated int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, duty.ErrDuplicateOpenSession):
			duplicated++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, duplicated)
}

func TestCheckOutHalfDayWithinGrace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	clk.Set(monday(12, 10))
	out, err := svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: resp.Session.ID})
	require.NoError(t, err)

	assert.Equal(t, 240, out.DutyMinutes)
	assert.Equal(t, 4, out.CumulativeHours)
	assert.Equal(t, duty.StatusPresent, out.Classification)
	assert.Equal(t, "2026-03-02 12:10:00", out.TimeOut)
	assert.Equal(t, "2026-03-02 12:00:00", out.AdjustedTimeOut)
}

func TestCheckOutLateFullDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, []string{"MON-FULL"}, monday(8, 20))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	clk.Set(monday(17, 5))
	out, err := svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: resp.Session.ID})
	require.NoError(t, err)

	assert.Equal(t, 460, out.DutyMinutes)
	assert.Equal(t, 7, out.CumulativeHours)
	assert.Equal(t, duty.StatusLate, out.Classification)
	assert.Equal(t, "2026-03-02 17:00:00", out.AdjustedTimeOut)
}

func TestCheckOutUnknownSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, _ := newTestService(t, []string{"MON-AM"}, monday(9, 0))

	_, err := svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: "missing"})
	assert.ErrorIs(t, err, duty.ErrSessionNotFound)
}

func TestReconcileMarksAbsentAfterWindowCloses(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, clk := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	clk.Set(monday(13, 0))
	result, err := svc.Reconcile(ctx, clk.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 1, result.MarkedAbsent)

	swept, err := store.SessionRepository().GetByID(ctx, resp.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, duty.StatusAbsent, swept.Status)
	assert.Equal(t, 0, swept.DutyMinutes)
	assert.Nil(t, swept.TimeOut)

	// A swept session can no longer be checked out
	_, err = svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: resp.Session.ID})
	assert.ErrorIs(t, err, duty.ErrNoOpenSession)
}

func TestReconcileLeavesRunningWindowsOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, store, clk := newTestService(t, []string{"MON-FULL"}, monday(8, 5))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	// Morning sweep runs while the full-day window is still open
	clk.Set(monday(13, 0))
	result, err := svc.Reconcile(ctx, clk.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.MarkedAbsent)

	session, err := store.SessionRepository().GetByID(ctx, resp.Session.ID)
	require.NoError(t, err)
	assert.True(t, session.Open())

	// Evening sweep catches it once the window has closed
	clk.Set(monday(18, 0))
	result, err = svc.Reconcile(ctx, clk.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, result.MarkedAbsent)
}

// sweepRaceRepository lets a test interleave work between the sweep's
// open-session listing and its per-session updates.
type sweepRaceRepository struct {
	duty.SessionRepository
	afterList func()
}

func (r *sweepRaceRepository) ListOpenByDate(ctx context.Context, date time.Time) ([]duty.Session, error) {
	sessions, err := r.SessionRepository.ListOpenByDate(ctx, date)
	if r.afterList != nil {
		r.afterList()
	}
	return sessions, err
}

func TestReconcileSkipsSessionCheckedOutMidSweep(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := memory.NewStore()
	store.SeedSlots(schedule.DefaultCatalog())
	store.SeedScholar(scholarFixture([]string{"MON-AM"}))

	clk := &clock.Fixed{T: monday(8, 5)}
	svc := NewDutyService(
		store,
		clk,
		duty.DefaultGracePeriod,
		store.SessionRepository(),
		store.ScholarRepository(),
		store.SlotRepository(),
	)

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	raced := &sweepRaceRepository{SessionRepository: store.SessionRepository()}
	sweeper := NewDutyService(
		store,
		clk,
		duty.DefaultGracePeriod,
		raced,
		store.ScholarRepository(),
		store.SlotRepository(),
	)

	// The check-out commits after the sweep has listed the session but
	// before it writes the absence.
	var out duty.CheckOutResponse
	raced.afterList = func() {
		var err error
		out, err = svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: resp.Session.ID})
		require.NoError(t, err)
	}

	clk.Set(monday(13, 0))
	result, err := sweeper.Reconcile(ctx, clk.Now())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Examined)
	assert.Equal(t, 0, result.MarkedAbsent)
	assert.Equal(t, 240, out.DutyMinutes)

	session, err := store.SessionRepository().GetByID(ctx, resp.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, duty.StatusPresent, session.Status)
	assert.Equal(t, 240, session.DutyMinutes)
	require.NotNil(t, session.TimeOut)
}

func TestListSessionsFiltersAndPaginates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc, _, clk := newTestService(t, []string{"MON-AM"}, monday(8, 5))

	resp, err := svc.Identify(ctx, duty.IdentifyRequest{
		ScholarID:  testScholarID,
		SemesterID: testSemesterID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Session)

	clk.Set(monday(11, 50))
	_, err = svc.CheckOut(ctx, duty.CheckOutRequest{SessionID: resp.Session.ID})
	require.NoError(t, err)

	scholarID := testScholarID
	status := string(duty.StatusPresent)
	list, err := svc.ListSessions(ctx, duty.SessionFilter{
		ScholarID: &scholarID,
		Status:    &status,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), list.TotalCount)
	assert.Equal(t, 1, list.TotalPages)
	require.Len(t, list.Sessions, 1)
	assert.Equal(t, "Maria Santos", list.Sessions[0].ScholarName)

	absent := string(duty.StatusAbsent)
	list, err = svc.ListSessions(ctx, duty.SessionFilter{Status: &absent})
	require.NoError(t, err)
	assert.Equal(t, int64(0), list.TotalCount)
}
