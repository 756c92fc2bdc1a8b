package monitoring

import "errors"

// Monitoring domain errors
var (
	ErrAlreadyMonitoredToday = errors.New("scholar has already been monitored today")
	ErrEntryNotFound         = errors.New("monitoring entry not found")
)
