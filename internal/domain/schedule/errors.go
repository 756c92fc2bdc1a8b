package schedule

import "errors"

// Schedule domain errors
var (
	ErrSlotNotFound = errors.New("duty slot not found")
	ErrNoDutyToday  = errors.New("no duty scheduled for today")

	// Assignment invariant violations
	ErrEmptyAssignment = errors.New("assignment has no duty slots")
	ErrMixedSlotKinds  = errors.New("assignment mixes a full-day slot with half-day slots")
	ErrTooManySlots    = errors.New("assignment has more than two duty slots")
	ErrDuplicateSlot   = errors.New("assignment lists the same duty slot twice")
	ErrSameHalfSameDay = errors.New("assignment has two slots on the same half of the same weekday")
	ErrMultipleFullDay = errors.New("assignment has more than one full-day slot")
)
