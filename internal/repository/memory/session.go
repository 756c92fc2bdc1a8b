package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
)

type sessionRepository struct {
	store *Store
}

func (s *Store) SessionRepository() duty.SessionRepository {
	return &sessionRepository{store: s}
}

// Create implements duty.SessionRepository.
func (r *sessionRepository) Create(ctx context.Context, session duty.Session) (duty.Session, error) {
	defer r.store.lock(ctx)()

	for _, existing := range r.store.sessions {
		if existing.ScholarID == session.ScholarID && sameDate(existing.Date, session.Date) && existing.TimeOut == nil {
			return duty.Session{}, duty.ErrDuplicateOpenSession
		}
	}

	session.ID = uuid.NewString()
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	r.store.sessions[session.ID] = session
	return session, nil
}

// GetByID implements duty.SessionRepository.
func (r *sessionRepository) GetByID(ctx context.Context, id string) (duty.Session, error) {
	defer r.store.lock(ctx)()

	session, ok := r.store.sessions[id]
	if !ok {
		return duty.Session{}, duty.ErrSessionNotFound
	}
	return session, nil
}

// GetOpenSession implements duty.SessionRepository.
func (r *sessionRepository) GetOpenSession(ctx context.Context, scholarID string, date time.Time) (*duty.Session, error) {
	defer r.store.lock(ctx)()

	for _, session := range r.store.sessions {
		if session.ScholarID == scholarID && sameDate(session.Date, date) && session.Open() {
			found := session
			return &found, nil
		}
	}
	return nil, nil
}

// Update implements duty.SessionRepository.
func (r *sessionRepository) Update(ctx context.Context, session duty.Session) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.sessions[session.ID]; !ok {
		return duty.ErrSessionNotFound
	}
	session.UpdatedAt = time.Now()
	r.store.sessions[session.ID] = session
	return nil
}

// ListOpenByDate implements duty.SessionRepository.
func (r *sessionRepository) ListOpenByDate(ctx context.Context, date time.Time) ([]duty.Session, error) {
	defer r.store.lock(ctx)()

	var sessions []duty.Session
	for _, session := range r.store.sessions {
		if sameDate(session.Date, date) && session.Open() {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].TimeIn.Before(sessions[j].TimeIn)
	})
	return sessions, nil
}

// SumDutyMinutes implements duty.SessionRepository.
func (r *sessionRepository) SumDutyMinutes(ctx context.Context, scholarID, semesterID string) (int, error) {
	defer r.store.lock(ctx)()

	total := 0
	for _, session := range r.store.sessions {
		if session.ScholarID == scholarID && session.SemesterID == semesterID {
			total += session.DutyMinutes
		}
	}
	return total, nil
}

// SetCumulativeHours implements duty.SessionRepository.
func (r *sessionRepository) SetCumulativeHours(ctx context.Context, scholarID, semesterID string, hours int) error {
	defer r.store.lock(ctx)()

	for id, session := range r.store.sessions {
		if session.ScholarID == scholarID && session.SemesterID == semesterID {
			session.CumulativeHours = hours
			session.UpdatedAt = time.Now()
			r.store.sessions[id] = session
		}
	}
	return nil
}

// List implements duty.SessionRepository.
func (r *sessionRepository) List(ctx context.Context, filter duty.SessionFilter) ([]duty.Session, int64, error) {
	defer r.store.lock(ctx)()

	var matched []duty.Session
	for _, session := range r.store.sessions {
		if filter.ScholarID != nil && *filter.ScholarID != "" && session.ScholarID != *filter.ScholarID {
			continue
		}
		if filter.SemesterID != nil && *filter.SemesterID != "" && session.SemesterID != *filter.SemesterID {
			continue
		}
		if filter.Status != nil && *filter.Status != "" && string(session.Status) != *filter.Status {
			continue
		}
		if filter.StartDate != nil && *filter.StartDate != "" {
			if session.Date.Format("2006-01-02") < *filter.StartDate {
				continue
			}
		}
		if filter.EndDate != nil && *filter.EndDate != "" {
			if session.Date.Format("2006-01-02") > *filter.EndDate {
				continue
			}
		}
		if name, ok := r.store.scholars[session.ScholarID]; ok {
			fullName := name.FullName
			session.ScholarName = &fullName
		}
		matched = append(matched, session)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		return matched[i].TimeIn.After(matched[j].TimeIn)
	})

	total := int64(len(matched))

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}
