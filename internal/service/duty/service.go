package duty

import (
	"context"
	"fmt"
	"time"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/clock"
	"github.com/scholarduty/duty-backend-go/internal/pkg/database"
)

const timeFormat = "2006-01-02 15:04:05"

type DutyServiceImpl struct {
	txm   database.TxManager
	clk   clock.Clock
	grace time.Duration
	duty.SessionRepository
	scholar.ScholarRepository
	schedule.SlotRepository
}

func NewDutyService(
	txm database.TxManager,
	clk clock.Clock,
	grace time.Duration,
	sessionRepo duty.SessionRepository,
	scholarRepo scholar.ScholarRepository,
	slotRepo schedule.SlotRepository,
) duty.DutyService {
	return &DutyServiceImpl{
		txm:               txm,
		clk:               clk,
		grace:             grace,
		SessionRepository: sessionRepo,
		ScholarRepository: scholarRepo,
		SlotRepository:    slotRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(timeFormat)
	return &formatted
}

// Identify implements duty.DutyService.
func (s *DutyServiceImpl) Identify(ctx context.Context, req duty.IdentifyRequest) (duty.IdentifyResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.IdentifyResponse{}, err
	}

	sc, err := s.ScholarRepository.GetByID(ctx, req.ScholarID)
	if err != nil {
		return duty.IdentifyResponse{}, err
	}

	if sc.SemesterID != req.SemesterID {
		return duty.IdentifyResponse{}, duty.ErrSemesterMismatch
	}

	assignment, err := s.loadAssignment(ctx, sc)
	if err != nil {
		return duty.IdentifyResponse{}, err
	}

	now := s.clk.Now()
	if !assignment.IsDutyDay(now) {
		return duty.IdentifyResponse{}, schedule.ErrNoDutyToday
	}

	windowOpen := assignment.WindowOpen(now)
	resp := duty.IdentifyResponse{
		WindowOpen:  windowOpen,
		ScholarName: sc.FullName,
		Slots:       describeSlots(assignment.SlotsOn(now.Weekday())),
	}

	open, err := s.SessionRepository.GetOpenSession(ctx, sc.ID, clock.DateOf(now))
	if err != nil {
		return duty.IdentifyResponse{}, err
	}

	if open != nil {
		resp.Action = duty.ActionCheckOut
		sessionResp := toSessionResponse(*open)
		resp.Session = &sessionResp
		return resp, nil
	}

	resp.Action = duty.ActionCheckIn
	if !windowOpen {
		// Outside the duty window the scan resolves to a lookup only; the
		// caller sees what would happen without a session being opened.
		return resp, nil
	}

	windowStart, _, _, _ := assignment.EffectiveWindow(now)
	adjustedIn, status := duty.AdjustCheckIn(now, windowStart, s.grace)

	var created duty.Session
	err = s.txm.WithTx(ctx, func(ctx context.Context) error {
		totalMinutes, err := s.SessionRepository.SumDutyMinutes(ctx, sc.ID, sc.SemesterID)
		if err != nil {
			return fmt.Errorf("failed to sum duty minutes: %w", err)
		}

		created, err = s.SessionRepository.Create(ctx, duty.Session{
			ScholarID:       sc.ID,
			SemesterID:      sc.SemesterID,
			Date:            clock.DateOf(now),
			TimeIn:          now,
			AdjustedTimeIn:  adjustedIn,
			Status:          status,
			CumulativeHours: duty.CumulativeHours(totalMinutes),
		})
		return err
	})
	if err != nil {
		return duty.IdentifyResponse{}, err
	}

	sessionResp := toSessionResponse(created)
	resp.Session = &sessionResp
	return resp, nil
}

// CheckOut implements duty.DutyService.
func (s *DutyServiceImpl) CheckOut(ctx context.Context, req duty.CheckOutRequest) (duty.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return duty.CheckOutResponse{}, err
	}

	now := s.clk.Now()

	var resp duty.CheckOutResponse
	err := s.txm.WithTx(ctx, func(ctx context.Context) error {
		session, err := s.SessionRepository.GetByID(ctx, req.SessionID)
		if err != nil {
			return err
		}
		if !session.Open() {
			return duty.ErrNoOpenSession
		}

		sc, err := s.ScholarRepository.GetByID(ctx, session.ScholarID)
		if err != nil {
			return err
		}

		assignment, err := s.loadAssignment(ctx, sc)
		if err != nil {
			return err
		}

		_, windowEnd, fullDay, ok := assignment.EffectiveWindow(session.TimeIn)
		if !ok {
			return schedule.ErrNoDutyToday
		}

		adjustedOut := duty.AdjustCheckOut(now, windowEnd)
		minutes := duty.SessionMinutes(session.AdjustedTimeIn, adjustedOut, fullDay)

		session.TimeOut = &now
		session.AdjustedTimeOut = &adjustedOut
		session.DutyMinutes = minutes
		if err := s.SessionRepository.Update(ctx, session); err != nil {
			return err
		}

		totalMinutes, err := s.SessionRepository.SumDutyMinutes(ctx, session.ScholarID, session.SemesterID)
		if err != nil {
			return fmt.Errorf("failed to sum duty minutes: %w", err)
		}

		hours := duty.CumulativeHours(totalMinutes)
		if err := s.SessionRepository.SetCumulativeHours(ctx, session.ScholarID, session.SemesterID, hours); err != nil {
			return err
		}

		resp = duty.CheckOutResponse{
			SessionID:       session.ID,
			DutyMinutes:     minutes,
			CumulativeHours: hours,
			Classification:  session.Status,
			TimeOut:         now.Format(timeFormat),
			AdjustedTimeOut: adjustedOut.Format(timeFormat),
		}
		return nil
	})
	if err != nil {
		return duty.CheckOutResponse{}, err
	}

	return resp, nil
}

// ListSessions implements duty.DutyService.
func (s *DutyServiceImpl) ListSessions(ctx context.Context, filter duty.SessionFilter) (duty.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return duty.ListSessionsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	sessions, total, err := s.SessionRepository.List(ctx, filter)
	if err != nil {
		return duty.ListSessionsResponse{}, err
	}

	responses := make([]duty.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, toSessionResponse(session))
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	return duty.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Sessions:   responses,
	}, nil
}

// Reconcile implements duty.DutyService.
func (s *DutyServiceImpl) Reconcile(ctx context.Context, now time.Time) (duty.ReconcileResult, error) {
	open, err := s.SessionRepository.ListOpenByDate(ctx, clock.DateOf(now))
	if err != nil {
		return duty.ReconcileResult{}, err
	}

	result := duty.ReconcileResult{SweptAt: now, Examined: len(open)}

	for _, session := range open {
		sc, err := s.ScholarRepository.GetByID(ctx, session.ScholarID)
		if err != nil {
			return result, err
		}

		assignment, err := s.loadAssignment(ctx, sc)
		if err != nil {
			return result, err
		}

		_, windowEnd, _, ok := assignment.EffectiveWindow(session.TimeIn)
		if ok && windowEnd.After(now) {
			// Window still running; the evening sweep picks it up if the
			// scholar never checks out.
			continue
		}

		marked := false
		if err := s.txm.WithTx(ctx, func(ctx context.Context) error {
			// Re-read under the transaction: a check-out may have committed
			// since the open-session listing, and a settled session must not
			// be overwritten.
			current, err := s.SessionRepository.GetByID(ctx, session.ID)
			if err != nil {
				return err
			}
			if !current.Open() {
				return nil
			}

			current.Status = duty.StatusAbsent
			current.DutyMinutes = 0
			marked = true
			return s.SessionRepository.Update(ctx, current)
		}); err != nil {
			return result, err
		}
		if marked {
			result.MarkedAbsent++
		}
	}

	return result, nil
}

func (s *DutyServiceImpl) loadAssignment(ctx context.Context, sc scholar.Scholar) (schedule.Assignment, error) {
	slots, err := s.SlotRepository.GetByIDs(ctx, sc.SlotIDs)
	if err != nil {
		return schedule.Assignment{}, err
	}

	assignment := schedule.Assignment{
		ScholarID:  sc.ID,
		SemesterID: sc.SemesterID,
		Slots:      slots,
	}
	if err := assignment.Validate(); err != nil {
		return schedule.Assignment{}, err
	}

	return assignment, nil
}

func describeSlots(slots []schedule.DutySlot) []string {
	described := make([]string, 0, len(slots))
	for _, slot := range slots {
		described = append(described, slot.Describe())
	}
	return described
}

func toSessionResponse(session duty.Session) duty.SessionResponse {
	resp := duty.SessionResponse{
		ID:              session.ID,
		ScholarID:       session.ScholarID,
		SemesterID:      session.SemesterID,
		Date:            session.Date.Format("2006-01-02"),
		TimeIn:          session.TimeIn.Format(timeFormat),
		TimeOut:         timePtrToString(session.TimeOut),
		AdjustedTimeIn:  session.AdjustedTimeIn.Format(timeFormat),
		AdjustedTimeOut: timePtrToString(session.AdjustedTimeOut),
		DutyMinutes:     session.DutyMinutes,
		Status:          string(session.Status),
		CumulativeHours: session.CumulativeHours,
	}
	if session.ScholarName != nil {
		resp.ScholarName = *session.ScholarName
	}
	return resp
}
