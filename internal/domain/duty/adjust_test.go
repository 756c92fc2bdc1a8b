package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestAdjustCheckIn(t *testing.T) {
	t.Parallel()

	windowStart := at(8, 0)

	tests := []struct {
		name       string
		raw        time.Time
		wantTime   time.Time
		wantStatus SessionStatus
	}{
		{"early arrival clamps to start", at(7, 45), at(8, 0), StatusPresent},
		{"exactly on time", at(8, 0), at(8, 0), StatusPresent},
		{"within grace clamps to start", at(8, 5), at(8, 0), StatusPresent},
		{"at grace boundary still present", at(8, 15), at(8, 0), StatusPresent},
		{"one minute past grace is late", at(8, 16), at(8, 16), StatusLate},
		{"late keeps raw time", at(8, 20), at(8, 20), StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			adjusted, status := AdjustCheckIn(tt.raw, windowStart, DefaultGracePeriod)
			assert.Equal(t, tt.wantTime, adjusted)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestAdjustCheckInIdempotent(t *testing.T) {
	t.Parallel()

	windowStart := at(8, 0)

	for _, raw := range []time.Time{at(7, 50), at(8, 5), at(8, 30)} {
		once, status1 := AdjustCheckIn(raw, windowStart, DefaultGracePeriod)
		twice, status2 := AdjustCheckIn(once, windowStart, DefaultGracePeriod)
		assert.Equal(t, once, twice)
		assert.Equal(t, status1, status2)
	}
}

func TestAdjustCheckOut(t *testing.T) {
	t.Parallel()

	windowEnd := at(12, 0)

	tests := []struct {
		name string
		raw  time.Time
		want time.Time
	}{
		{"early check-out stands", at(11, 30), at(11, 30)},
		{"exactly at end stands", at(12, 0), at(12, 0)},
		{"within grace clamps to end", at(12, 10), at(12, 0)},
		{"beyond grace clamps to end", at(12, 40), at(12, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AdjustCheckOut(tt.raw, windowEnd))
		})
	}
}

func TestAdjustCheckOutIdempotent(t *testing.T) {
	t.Parallel()

	windowEnd := at(17, 0)

	for _, raw := range []time.Time{at(16, 30), at(17, 5), at(18, 0)} {
		once := AdjustCheckOut(raw, windowEnd)
		assert.Equal(t, once, AdjustCheckOut(once, windowEnd))
	}
}
