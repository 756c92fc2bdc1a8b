package response

import (
	"errors"
	"net/http"

	"github.com/scholarduty/duty-backend-go/internal/domain/duty"
	"github.com/scholarduty/duty-backend-go/internal/domain/monitoring"
	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
	"github.com/scholarduty/duty-backend-go/internal/domain/scholar"
	"github.com/scholarduty/duty-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Policy rejections
	case errors.Is(err, duty.ErrSemesterMismatch):
		Forbidden(w, "Scholar is not enrolled in the given semester")
	case errors.Is(err, schedule.ErrNoDutyToday):
		BadRequest(w, "No duty scheduled for today", nil)

	// State conflicts
	case errors.Is(err, duty.ErrDuplicateOpenSession):
		Conflict(w, "An open duty session already exists for today")
	case errors.Is(err, duty.ErrNoOpenSession):
		Conflict(w, "No open duty session to check out")
	case errors.Is(err, monitoring.ErrAlreadyMonitoredToday):
		Conflict(w, "Scholar already has a monitoring entry for today")

	// Not found
	case errors.Is(err, duty.ErrSessionNotFound):
		NotFound(w, "Duty session not found")
	case errors.Is(err, monitoring.ErrEntryNotFound):
		NotFound(w, "Monitoring entry not found")
	case errors.Is(err, scholar.ErrScholarNotFound):
		NotFound(w, "Scholar not found")
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Duty slot not found")

	// Broken assignments read like bad requests to the caller
	case errors.Is(err, schedule.ErrEmptyAssignment),
		errors.Is(err, schedule.ErrTooManySlots),
		errors.Is(err, schedule.ErrMixedSlotKinds),
		errors.Is(err, schedule.ErrMultipleFullDay),
		errors.Is(err, schedule.ErrDuplicateSlot),
		errors.Is(err, schedule.ErrSameHalfSameDay):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
