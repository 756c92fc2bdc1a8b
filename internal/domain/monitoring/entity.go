package monitoring

import "time"

// Entry is the daily monitoring check for a scholar. At most one exists per
// scholar per date; a repeat check the same day is rejected.
type Entry struct {
	ID              string
	ScholarID       string
	SemesterID      string
	Date            time.Time
	HasViolation    bool
	ViolationReason *string
	ViolationCount  int
	SessionID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Block marks a scholar whose semester violation total reached the penalty
// threshold. Removed only by an explicit revert.
type Block struct {
	ID          string
	ScholarID   string
	SemesterID  string
	DateBlocked time.Time
}
