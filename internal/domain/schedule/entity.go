package schedule

import "time"

type SlotKind string

const (
	KindMorningHalf   SlotKind = "MORNING_HALF"
	KindAfternoonHalf SlotKind = "AFTERNOON_HALF"
	KindFullDay       SlotKind = "FULL_DAY"
)

var SlotKindValues = []string{
	string(KindMorningHalf),
	string(KindAfternoonHalf),
	string(KindFullDay),
}

// Unpaid midday break, excluded from full-day duty minutes.
const (
	BreakStartMinute = 12 * 60
	BreakEndMinute   = 13 * 60
)

// DutySlot is a recurring weekly time window a scholar reports to.
// StartMinute/EndMinute are minutes after local midnight; the window is
// half-open [start, end).
type DutySlot struct {
	ID          string
	Weekday     time.Weekday
	Kind        SlotKind
	StartMinute int
	EndMinute   int
}

func (k SlotKind) IsFullDay() bool {
	return k == KindFullDay
}

// Window anchors the slot's time-of-day range onto the calendar day of ref.
func (s DutySlot) Window(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, ref.Location())
	start = midnight.Add(time.Duration(s.StartMinute) * time.Minute)
	end = midnight.Add(time.Duration(s.EndMinute) * time.Minute)
	return start, end
}

// Contains reports whether now falls inside [start, end) on now's own day.
// The weekday check is the caller's concern.
func (s DutySlot) Contains(now time.Time) bool {
	start, end := s.Window(now)
	return !now.Before(start) && now.Before(end)
}
