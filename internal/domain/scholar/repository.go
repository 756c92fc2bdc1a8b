package scholar

import "context"

type ScholarRepository interface {
	// GetByID retrieves a scholar with their assigned slot IDs
	GetByID(ctx context.Context, id string) (Scholar, error)
}
