package duty

import "errors"

// Duty domain errors
var (
	// Policy rejection: refused, never retried. A closed window is not an
	// error; the identify response reports it via window_open.
	ErrSemesterMismatch = errors.New("scholar is not enrolled in the given semester")

	// State conflicts: a race or a genuine duplicate attempt
	ErrDuplicateOpenSession = errors.New("an open duty session already exists for today")
	ErrNoOpenSession        = errors.New("no open duty session to check out")

	// General errors
	ErrSessionNotFound = errors.New("duty session not found")
)
