package duty

import (
	"context"
	"time"
)

// SessionRepository defines data access for duty sessions. Create and
// Update run against the querier bound to the context, so a service can wrap
// check-for-existing plus create into one transaction.
type SessionRepository interface {
	// Create inserts a new open session. Returns ErrDuplicateOpenSession
	// when the scholar already has an open session for that date.
	Create(ctx context.Context, session Session) (Session, error)

	// GetByID retrieves a session by ID
	GetByID(ctx context.Context, id string) (Session, error)

	// GetOpenSession returns the scholar's open session for the date, or nil
	GetOpenSession(ctx context.Context, scholarID string, date time.Time) (*Session, error)

	// Update rewrites the session's mutable fields
	Update(ctx context.Context, session Session) error

	// ListOpenByDate returns every open session for the date (reconciler sweep)
	ListOpenByDate(ctx context.Context, date time.Time) ([]Session, error)

	// SumDutyMinutes totals duty minutes for a scholar within a semester
	SumDutyMinutes(ctx context.Context, scholarID, semesterID string) (int, error)

	// SetCumulativeHours stores the recomputed semester total on every
	// session of the scholar, keeping the running-total query O(1)
	SetCumulativeHours(ctx context.Context, scholarID, semesterID string, hours int) error

	// List retrieves sessions with filters and pagination (reporting surface)
	List(ctx context.Context, filter SessionFilter) ([]Session, int64, error)
}
