package schedule

import "context"

// SlotRepository reads the duty-slot catalog. Slots are immutable reference
// data; there is no write path outside seeding.
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (DutySlot, error)
	GetByIDs(ctx context.Context, ids []string) ([]DutySlot, error)
	List(ctx context.Context) ([]DutySlot, error)
}
