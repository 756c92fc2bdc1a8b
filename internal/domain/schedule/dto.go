package schedule

// SlotResponse renders one catalog slot for the reference-data endpoints
type SlotResponse struct {
	ID          string `json:"id"`
	Weekday     string `json:"weekday"`
	Kind        string `json:"kind"`
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Display     string `json:"display"`
}

func ToSlotResponse(s DutySlot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		Weekday:     s.Weekday.String(),
		Kind:        string(s.Kind),
		StartMinute: s.StartMinute,
		EndMinute:   s.EndMinute,
		Display:     s.Describe(),
	}
}
