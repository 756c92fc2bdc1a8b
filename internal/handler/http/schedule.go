package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	ListSlots(w http.ResponseWriter, r *http.Request)
	GetSlot(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
	}
}

// ListSlots implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListSlots(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.ListSlots(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSlot implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetSlot(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetSlot(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
