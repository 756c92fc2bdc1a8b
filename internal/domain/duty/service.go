package duty

import (
	"context"
	"time"
)

// DutyService defines the scan/check-out flow and the reconciliation sweep
type DutyService interface {
	// Identify resolves a scan/lookup event: verifies the semester and duty
	// day, infers the next action, and performs the check-in when that
	// action is CheckIn and the window is open
	Identify(ctx context.Context, req IdentifyRequest) (IdentifyResponse, error)

	// CheckOut closes an open session: adjusts both boundaries, computes
	// session minutes, and recomputes the semester cumulative total
	CheckOut(ctx context.Context, req CheckOutRequest) (CheckOutResponse, error)

	// ListSessions retrieves ledger entries for reporting collaborators
	ListSessions(ctx context.Context, filter SessionFilter) (ListSessionsResponse, error)

	// Reconcile closes out sessions whose duty window ended before now,
	// marking them absent with zero duty minutes
	Reconcile(ctx context.Context, now time.Time) (ReconcileResult, error)
}
