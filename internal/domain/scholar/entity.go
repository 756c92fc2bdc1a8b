package scholar

import "time"

// Scholar is the resolved identity behind a scan or manual lookup. Account
// provisioning lives in an external collaborator; this service only reads
// the roster to match events against duty schedules.
type Scholar struct {
	ID         string
	FullName   string
	SemesterID string
	SlotIDs    []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
