package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/handler/http/response"
	"github.com/scholarduty/duty-backend-go/internal/pkg/validator"
)

type MonitoringHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Revert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type monitoringHandlerImpl struct {
	monitoringService monitoring.MonitoringService
}

func NewMonitoringHandler(monitoringService monitoring.MonitoringService) MonitoringHandler {
	return &monitoringHandlerImpl{
		monitoringService: monitoringService,
	}
}

// Record implements MonitoringHandler.
func (h *monitoringHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req monitoring.RecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.monitoringService.RecordMonitoring(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Monitoring entry recorded", result)
}

// Revert implements MonitoringHandler.
func (h *monitoringHandlerImpl) Revert(w http.ResponseWriter, r *http.Request) {
	req := monitoring.RevertRequest{
		EntryID: chi.URLParam(r, "id"),
	}

	result, err := h.monitoringService.RevertViolation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Violation reverted", result)
}

// List implements MonitoringHandler.
func (h *monitoringHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	scholarID := r.URL.Query().Get("scholar_id")
	semesterID := r.URL.Query().Get("semester_id")

	var errs validator.ValidationErrors
	if validator.IsEmpty(scholarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "scholar_id",
			Message: "scholar_id is required",
		})
	}
	if validator.IsEmpty(semesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "semester_id",
			Message: "semester_id is required",
		})
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.monitoringService.ListEntries(r.Context(), scholarID, semesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
