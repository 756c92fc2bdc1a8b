package monitoring

import (
	"context"
)

type EntryRepository interface {
	// Create inserts a monitoring entry. Returns ErrAlreadyMonitoredToday
	// when an entry already exists for the scholar on that date.
	Create(ctx context.Context, entry Entry) (Entry, error)

	// GetByID retrieves an entry by ID
	GetByID(ctx context.Context, id string) (Entry, error)

	// Update rewrites the entry's violation fields
	Update(ctx context.Context, entry Entry) error

	// SumViolations totals violation counts for a scholar within a semester
	SumViolations(ctx context.Context, scholarID, semesterID string) (int, error)

	// ListByScholar returns a scholar's entries for a semester, newest first
	ListByScholar(ctx context.Context, scholarID, semesterID string) ([]Entry, error)
}

type BlockRepository interface {
	// GetByScholar returns the scholar's block for the semester, or nil
	GetByScholar(ctx context.Context, scholarID, semesterID string) (*Block, error)

	// Create inserts a block record
	Create(ctx context.Context, block Block) (Block, error)

	// DeleteByScholar removes any block for the scholar in the semester and
	// reports whether one existed
	DeleteByScholar(ctx context.Context, scholarID, semesterID string) (bool, error)
}
