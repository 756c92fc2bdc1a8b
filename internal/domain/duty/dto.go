package duty

import (
	"time"

	"github.com/scholarduty/duty-backend-go/internal/pkg/validator"
)

// ========================================
// DUTY DTOs
// ========================================

type IdentifyRequest struct {
	ScholarID  string `json:"scholar_id"`
	SemesterID string `json:"semester_id"`
}

func (r *IdentifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScholarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "scholar_id",
			Message: "scholar_id is required",
		})
	} else if !validator.IsValidUUID(r.ScholarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "scholar_id",
			Message: "scholar_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.SemesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "semester_id",
			Message: "semester_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IdentifyResponse struct {
	Action      NextAction       `json:"action"`
	WindowOpen  bool             `json:"window_open"`
	ScholarName string           `json:"scholar_name,omitempty"`
	Slots       []string         `json:"slots,omitempty"`
	Session     *SessionResponse `json:"session,omitempty"`
}

type CheckOutRequest struct {
	SessionID string `json:"session_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "session_id",
			Message: "session_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutResponse struct {
	SessionID       string        `json:"session_id"`
	DutyMinutes     int           `json:"duty_minutes"`
	CumulativeHours int           `json:"cumulative_hours"`
	Classification  SessionStatus `json:"classification"`
	TimeOut         string        `json:"time_out"`
	AdjustedTimeOut string        `json:"adjusted_time_out"`
}

type SessionFilter struct {
	ScholarID  *string
	SemesterID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, SessionStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, LATE, ABSENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID              string  `json:"id"`
	ScholarID       string  `json:"scholar_id"`
	ScholarName     string  `json:"scholar_name,omitempty"`
	SemesterID      string  `json:"semester_id"`
	Date            string  `json:"date"`
	TimeIn          string  `json:"time_in"`
	TimeOut         *string `json:"time_out"`
	AdjustedTimeIn  string  `json:"adjusted_time_in"`
	AdjustedTimeOut *string `json:"adjusted_time_out"`
	DutyMinutes     int     `json:"duty_minutes"`
	Status          string  `json:"status"`
	CumulativeHours int     `json:"cumulative_hours"`
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Sessions   []SessionResponse `json:"sessions"`
}

type ReconcileResult struct {
	SweptAt      time.Time `json:"swept_at"`
	Examined     int       `json:"examined"`
	MarkedAbsent int       `json:"marked_absent"`
}
