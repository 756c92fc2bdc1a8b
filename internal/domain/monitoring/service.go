package monitoring

import "context"

// MonitoringService records daily checks, keeps the per-semester violation
// ledger, and manages the penalty block
type MonitoringService interface {
	// RecordMonitoring inserts the daily check and, on a violation that
	// pushes the semester total to the threshold, creates the block record
	// within the same transaction
	RecordMonitoring(ctx context.Context, req RecordRequest) (RecordResponse, error)

	// RevertViolation zeroes an entry's violation and unconditionally
	// removes any block for the scholar
	RevertViolation(ctx context.Context, req RevertRequest) (RevertResponse, error)

	// ListEntries returns a scholar's monitoring history for a semester
	ListEntries(ctx context.Context, scholarID, semesterID string) ([]EntryResponse, error)
}
