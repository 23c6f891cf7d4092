package calendar

import "github.com/shopspring/decimal"

// DayStats summarizes the events of a day.
type DayStats struct {
	Paid     int             `json:"paid" example:"1"`        // Number of paid events
	Pending  int             `json:"pending" example:"2"`     // Number of pending events
	Overdue  int             `json:"overdue" example:"0"`     // Number of overdue events
	Income   decimal.Decimal `json:"income" example:"2500"`   // Sum of all income
	Expenses decimal.Decimal `json:"expenses" example:"1200"` // Sum of all expenses
	Net      decimal.Decimal `json:"net" example:"1300"`      // Income minus expenses
}

// Stats counts the events per status and sums up their amounts.
func Stats(events []Event) DayStats {
	s := DayStats{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	for _, e := range events {
		switch e.Status {
		case StatusPaid:
			s.Paid++
		case StatusPending:
			s.Pending++
		case StatusOverdue:
			s.Overdue++
		}

		if e.Type == TypeIncome {
			s.Income = s.Income.Add(e.Amount)
		} else if e.Type.IsExpense() {
			s.Expenses = s.Expenses.Add(e.Amount)
		}
	}

	s.Net = s.Income.Sub(s.Expenses)
	return s
}

// Day is everything known about a single day of the calendar.
type Day struct {
	Date   string    `json:"date" example:"2024-01-31"` // The day in YYYY-MM-DD format
	Events []Event   `json:"events"`                    // Events due on the day
	Status DayStatus `json:"status"`                    // Dominant status of the day
	Stats  DayStats  `json:"stats"`                     // Statistics for the day
}

// ResolveDay returns the events, status and statistics of the day with the given key.
func (i Index) ResolveDay(key string) Day {
	events := i.GetKey(key)

	return Day{
		Date:   key,
		Events: events,
		Status: Classify(events),
		Stats:  Stats(events),
	}
}
