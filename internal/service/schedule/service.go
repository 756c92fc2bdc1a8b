package schedule

import (
	"context"

	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.SlotRepository
}

func NewScheduleService(slotRepo schedule.SlotRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		SlotRepository: slotRepo,
	}
}

// ListSlots implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ListSlots(ctx context.Context) ([]schedule.SlotResponse, error) {
	slots, err := s.SlotRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, schedule.ToSlotResponse(slot))
	}
	return responses, nil
}

// GetSlot implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSlot(ctx context.Context, id string) (schedule.SlotResponse, error) {
	slot, err := s.SlotRepository.GetByID(ctx, id)
	if err != nil {
		return schedule.SlotResponse{}, err
	}
	return schedule.ToSlotResponse(slot), nil
}
