package calendar

// dueSoonDays is the number of days before the due date from which on a
// pending event is highlighted.
const dueSoonDays = 3

// DayStatus is the dominant classification of a set of events.
type DayStatus struct {
	HasEvents bool  `json:"hasEvents" example:"true"` // Are there any events?
	Status    Color `json:"status" example:"red"`     // Dominant color
	Priority  int   `json:"priority" example:"4"`     // Rank of the dominant color, 0 to 4
}

// rank returns the color and priority of a single event.
//
// overdue > pending and due within dueSoonDays > paid > pending.
func rank(status Status, daysUntilDue int) (Color, int) {
	switch {
	case status == StatusOverdue:
		return ColorRed, 4
	case status == StatusPending && daysUntilDue <= dueSoonDays:
		return ColorYellow, 3
	case status == StatusPaid:
		return ColorGreen, 2
	default:
		return ColorBlue, 1
	}
}

// Classify returns the dominant color and priority of events in a single
// pass. Without events, the result is gray with priority 0.
//
// Classify is the only place where the color rules live. Event colors,
// day status and the dominant day color are all derived from it.
func Classify(events []Event) DayStatus {
	result := DayStatus{Status: ColorGray}

	for _, e := range events {
		result.HasEvents = true

		color, priority := rank(e.Status, e.DaysUntilDue)
		if priority > result.Priority {
			result.Status = color
			result.Priority = priority
		}
	}

	return result
}

// colorOf returns the display color of a single event.
func colorOf(status Status, daysUntilDue int) Color {
	return Classify([]Event{{Status: status, DaysUntilDue: daysUntilDue}}).Status
}
