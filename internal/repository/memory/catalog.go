package memory

import (
	"context"

	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
)

type scholarRepository struct {
	store *Store
}

func (s *Store) ScholarRepository() scholar.ScholarRepository {
	return &scholarRepository{store: s}
}

// GetByID implements scholar.ScholarRepository.
func (r *scholarRepository) GetByID(ctx context.Context, id string) (scholar.Scholar, error) {
	defer r.store.lock(ctx)()

	sc, ok := r.store.scholars[id]
	if !ok {
		return scholar.Scholar{}, scholar.ErrScholarNotFound
	}
	return sc, nil
}

type slotRepository struct {
	store *Store
}

func (s *Store) SlotRepository() schedule.SlotRepository {
	return &slotRepository{store: s}
}

// GetByID implements schedule.SlotRepository.
func (r *slotRepository) GetByID(ctx context.Context, id string) (schedule.DutySlot, error) {
	defer r.store.lock(ctx)()

	slot, ok := r.store.slots[id]
	if !ok {
		return schedule.DutySlot{}, schedule.ErrSlotNotFound
	}
	return slot, nil
}

// GetByIDs implements schedule.SlotRepository.
func (r *slotRepository) GetByIDs(ctx context.Context, ids []string) ([]schedule.DutySlot, error) {
	defer r.store.lock(ctx)()

	slots := make([]schedule.DutySlot, 0, len(ids))
	for _, id := range ids {
		slot, ok := r.store.slots[id]
		if !ok {
			return nil, schedule.ErrSlotNotFound
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// List implements schedule.SlotRepository.
func (r *slotRepository) List(ctx context.Context) ([]schedule.DutySlot, error) {
	defer r.store.lock(ctx)()

	slots := make([]schedule.DutySlot, 0, len(r.store.slots))
	for _, slot := range r.store.slots {
		slots = append(slots, slot)
	}
	return slots, nil
}
