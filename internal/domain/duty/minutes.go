package duty

import (
	"time"

	"github.com/scholarduty/duty-backend-go/internal/domain/schedule"
)

// SessionMinutes computes the duty minutes earned by one session from its
// adjusted boundary times. Full-day sessions lose the overlap with the
// unpaid midday break. Strict integer minutes throughout; never negative.
func SessionMinutes(adjIn, adjOut time.Time, fullDay bool) int {
	minutes := int(adjOut.Sub(adjIn).Minutes())
	if minutes < 0 {
		return 0
	}

	if fullDay {
		y, m, d := adjIn.Date()
		midnight := time.Date(y, m, d, 0, 0, 0, 0, adjIn.Location())
		breakStart := midnight.Add(time.Duration(schedule.BreakStartMinute) * time.Minute)
		breakEnd := midnight.Add(time.Duration(schedule.BreakEndMinute) * time.Minute)
		minutes -= overlapMinutes(adjIn, adjOut, breakStart, breakEnd)
		if minutes < 0 {
			minutes = 0
		}
	}

	return minutes
}

// CumulativeHours converts a scholar's semester-to-date duty minutes into
// whole hours. Partial hours below 60 minutes never round up.
func CumulativeHours(totalMinutes int) int {
	if totalMinutes < 0 {
		return 0
	}
	return totalMinutes / 60
}

func overlapMinutes(aStart, aEnd, bStart, bEnd time.Time) int {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}
