package duty

import "time"

// DefaultGracePeriod is the slack allowed on either boundary before policy
// adjustment kicks in.
const DefaultGracePeriod = 15 * time.Minute

// AdjustCheckIn normalizes a raw check-in time against the duty window start.
// Arrivals up to grace past the start (early ones included) are clamped to
// the nominal start so idle waiting time earns no credit; anything later is
// classified Late and kept as-is.
//
// The adjustment is a projection: applying it to an already-adjusted time
// yields the same value.
func AdjustCheckIn(raw, windowStart time.Time, grace time.Duration) (time.Time, SessionStatus) {
	if raw.After(windowStart.Add(grace)) {
		return raw, StatusLate
	}
	return windowStart, StatusPresent
}

// AdjustCheckOut normalizes a raw check-out time against the duty window end.
// An early check-out stands unchanged; anything past the end collapses to the
// end exactly, whether it landed inside the grace window or beyond it. No
// credit accrues after the window closes either way.
func AdjustCheckOut(raw, windowEnd time.Time) time.Time {
	if raw.After(windowEnd) {
		return windowEnd
	}
	return raw
}
