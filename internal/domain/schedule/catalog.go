package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Default duty windows: halves run 08:00-12:00 and 13:00-17:00, a full day
// runs 08:00-17:00 with the unpaid 12:00-13:00 break in the middle.
const (
	MorningStartMinute   = 8 * 60
	MorningEndMinute     = 12 * 60
	AfternoonStartMinute = 13 * 60
	AfternoonEndMinute   = 17 * 60
)

var catalogWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
}

// DefaultCatalog returns the built-in slot catalog: a morning half, an
// afternoon half, and a full day for every working weekday. Slot IDs are
// stable so assignments can reference them across deployments.
func DefaultCatalog() []DutySlot {
	var slots []DutySlot
	for _, day := range catalogWeekdays {
		prefix := strings.ToUpper(day.String()[:3])
		slots = append(slots,
			DutySlot{
				ID:          fmt.Sprintf("%s-AM", prefix),
				Weekday:     day,
				Kind:        KindMorningHalf,
				StartMinute: MorningStartMinute,
				EndMinute:   MorningEndMinute,
			},
			DutySlot{
				ID:          fmt.Sprintf("%s-PM", prefix),
				Weekday:     day,
				Kind:        KindAfternoonHalf,
				StartMinute: AfternoonStartMinute,
				EndMinute:   AfternoonEndMinute,
			},
			DutySlot{
				ID:          fmt.Sprintf("%s-FULL", prefix),
				Weekday:     day,
				Kind:        KindFullDay,
				StartMinute: MorningStartMinute,
				EndMinute:   AfternoonEndMinute,
			},
		)
	}
	return slots
}

// Describe renders a slot for display, e.g. "Monday 08:00-12:00".
func (s DutySlot) Describe() string {
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d",
		s.Weekday,
		s.StartMinute/60, s.StartMinute%60,
		s.EndMinute/60, s.EndMinute%60,
	)
}
