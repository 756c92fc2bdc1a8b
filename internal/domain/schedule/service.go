package schedule

import "context"

// ScheduleService exposes the slot catalog as reference data
type ScheduleService interface {
	ListSlots(ctx context.Context) ([]SlotResponse, error)
	GetSlot(ctx context.Context, id string) (SlotResponse, error)
}
