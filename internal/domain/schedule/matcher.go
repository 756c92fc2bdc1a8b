package schedule

import "time"

// Assignment is a scholar's duty schedule for one semester: either a single
// full-day slot or one or two half-day slots.
type Assignment struct {
	ScholarID  string
	SemesterID string
	Slots      []DutySlot
}

// Validate enforces the assignment invariants: at most two slots, full-day
// never combined with half-days, and no two slots covering the same half of
// the same weekday.
func (a Assignment) Validate() error {
	if len(a.Slots) == 0 {
		return ErrEmptyAssignment
	}
	if len(a.Slots) > 2 {
		return ErrTooManySlots
	}

	fullDays := 0
	for _, s := range a.Slots {
		if s.Kind.IsFullDay() {
			fullDays++
		}
	}
	if fullDays > 1 {
		return ErrMultipleFullDay
	}
	if fullDays == 1 && len(a.Slots) == 2 {
		return ErrMixedSlotKinds
	}

	if len(a.Slots) == 2 {
		first, second := a.Slots[0], a.Slots[1]
		if first.ID == second.ID {
			return ErrDuplicateSlot
		}
		if first.Weekday == second.Weekday && first.Kind == second.Kind {
			return ErrSameHalfSameDay
		}
	}

	return nil
}

// IsDutyDay reports whether now's weekday matches any assigned slot.
func (a Assignment) IsDutyDay(now time.Time) bool {
	return len(a.SlotsOn(now.Weekday())) > 0
}

// SlotsOn returns the assigned slots scheduled on the given weekday.
func (a Assignment) SlotsOn(day time.Weekday) []DutySlot {
	var slots []DutySlot
	for _, s := range a.Slots {
		if s.Weekday == day {
			slots = append(slots, s)
		}
	}
	return slots
}

// WindowOpen reports whether now falls inside the active window of any slot
// scheduled today. Each slot is evaluated independently; a match on either
// half-day slot is sufficient.
func (a Assignment) WindowOpen(now time.Time) bool {
	for _, s := range a.SlotsOn(now.Weekday()) {
		if s.Contains(now) {
			return true
		}
	}
	return false
}

// EffectiveWindow collapses today's slots into a single duty window: the
// earliest start to the latest end among them. fullDay is true when the
// window belongs to a full-day slot, which is the only case where the midday
// break is excluded from duty minutes. ok is false on a non-duty day.
func (a Assignment) EffectiveWindow(ref time.Time) (start, end time.Time, fullDay bool, ok bool) {
	slots := a.SlotsOn(ref.Weekday())
	if len(slots) == 0 {
		return time.Time{}, time.Time{}, false, false
	}

	start, end = slots[0].Window(ref)
	fullDay = slots[0].Kind.IsFullDay()
	for _, s := range slots[1:] {
		s0, e0 := s.Window(ref)
		if s0.Before(start) {
			start = s0
		}
		if e0.After(end) {
			end = e0
		}
		if s.Kind.IsFullDay() {
			fullDay = true
		}
	}
	return start, end, fullDay, true
}
