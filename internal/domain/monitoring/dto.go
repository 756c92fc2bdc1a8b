package monitoring

import (
	"github.com/scholarduty/duty-backend-go/internal/pkg/validator"
)

// ========================================
// MONITORING DTOs
// ========================================

type RecordRequest struct {
	ScholarID       string  `json:"scholar_id"`
	SemesterID      string  `json:"semester_id"`
	HasViolation    bool    `json:"has_violation"`
	ViolationReason *string `json:"violation_reason,omitempty"`
	SessionID       *string `json:"session_id,omitempty"`
}

func (r *RecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScholarID) {
		errs = append(errs, validator.ValidationError{
			Field:   "scholar_id",
			Message: "scholar_id is required",
		})
	}

	if validator.IsEmpty(r.SemesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "semester_id",
			Message: "semester_id is required",
		})
	}

	if r.HasViolation && (r.ViolationReason == nil || validator.IsEmpty(*r.ViolationReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "violation_reason",
			Message: "violation_reason is required when a violation is flagged",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	EntryID         string `json:"entry_id"`
	TotalViolations int    `json:"total_violations"`
	Blocked         bool   `json:"blocked"`
}

type RevertRequest struct {
	EntryID string `json:"entry_id"`
}

func (r *RevertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_id",
			Message: "entry_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RevertResponse struct {
	EntryID      string `json:"entry_id"`
	BlockRemoved bool   `json:"block_removed"`
}

type EntryResponse struct {
	ID              string  `json:"id"`
	ScholarID       string  `json:"scholar_id"`
	SemesterID      string  `json:"semester_id"`
	Date            string  `json:"date"`
	HasViolation    bool    `json:"has_violation"`
	ViolationReason *string `json:"violation_reason"`
	SessionID       *string `json:"session_id"`
}
