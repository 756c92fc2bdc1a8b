package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/handler/http/response"
)

type DutyHandler interface {
	Identify(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	ListSessions(w http.ResponseWriter, r *http.Request)
}

type dutyHandlerImpl struct {
	dutyService duty.DutyService
}

func NewDutyHandler(dutyService duty.DutyService) DutyHandler {
	return &dutyHandlerImpl{
		dutyService: dutyService,
	}
}

// Identify implements DutyHandler.
func (h *dutyHandlerImpl) Identify(w http.ResponseWriter, r *http.Request) {
	var req duty.IdentifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.dutyService.Identify(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Action == duty.ActionCheckIn && result.Session != nil {
		response.Created(w, "Check in successful", result)
		return
	}

	response.Success(w, result)
}

// CheckOut implements DutyHandler.
func (h *dutyHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req := duty.CheckOutRequest{
		SessionID: chi.URLParam(r, "id"),
	}

	result, err := h.dutyService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check out successful", result)
}

// ListSessions implements DutyHandler.
func (h *dutyHandlerImpl) ListSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := duty.SessionFilter{
		Page:  1,
		Limit: 20,
	}

	if v := query.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			response.BadRequest(w, "page must be a positive integer", nil)
			return
		}
		filter.Page = page
	}

	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > 100 {
			response.BadRequest(w, "limit must be between 1 and 100", nil)
			return
		}
		filter.Limit = limit
	}

	for param, dst := range map[string]**string{
		"scholar_id":  &filter.ScholarID,
		"semester_id": &filter.SemesterID,
		"start_date":  &filter.StartDate,
		"end_date":    &filter.EndDate,
		"status":      &filter.Status,
	} {
		if v := query.Get(param); v != "" {
			value := v
			*dst = &value
		}
	}

	result, err := h.dutyService.ListSessions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Sessions, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}
