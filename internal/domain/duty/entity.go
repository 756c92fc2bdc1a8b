package duty

import (
	"time"
)

type SessionStatus string

const (
	StatusPresent SessionStatus = "PRESENT"
	StatusLate    SessionStatus = "LATE"
	StatusAbsent  SessionStatus = "ABSENT"
)

var SessionStatusValues = []string{
	string(StatusPresent),
	string(StatusLate),
	string(StatusAbsent),
}

// Session is one check-in/check-out pair for a scholar on a given date.
// TimeOut stays nil while the session is open; the reconciler leaves it nil
// on an absence, which has no checkout time.
type Session struct {
	ID              string
	ScholarID       string
	SemesterID      string
	Date            time.Time
	TimeIn          time.Time
	TimeOut         *time.Time
	AdjustedTimeIn  time.Time
	AdjustedTimeOut *time.Time
	DutyMinutes     int
	Status          SessionStatus
	CumulativeHours int
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	ScholarName *string
}

// Open reports whether the session is still waiting for a check-out. An
// absent session is closed even though TimeOut is nil.
func (s Session) Open() bool {
	return s.TimeOut == nil && s.Status != StatusAbsent
}

// NextAction is the operation inferred for a scan/lookup event.
type NextAction string

const (
	ActionCheckIn  NextAction = "CHECK_IN"
	ActionCheckOut NextAction = "CHECK_OUT"
)
