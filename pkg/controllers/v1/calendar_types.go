package v1

import (
	"net/url"

	"github.com/duecal/backend/internal/types"
	"github.com/duecal/backend/pkg/calendar"
)

// CalendarQuery selects the month and the transactions of a calendar.
type CalendarQuery struct {
	Month types.Month `form:"month"` // The month in YYYY-MM format. Defaults to the current month.
	calendar.Filter
}

type CalendarLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/calendar?month=2024-01"`     // The calendar itself
	Previous string `json:"previous" example:"https://example.com/api/v1/calendar?month=2023-12"` // The calendar for the previous month
	Next     string `json:"next" example:"https://example.com/api/v1/calendar?month=2024-02"`     // The calendar for the next month
}

// Calendar is the API representation of the calendar of a month.
type Calendar struct {
	calendar.Calendar
	Index map[string][]calendar.Event `json:"index"` // Events grouped by their due date
	Links CalendarLinks               `json:"links"`
}

type CalendarResponse struct {
	Data  *Calendar `json:"data"`                                                    // Data for the calendar
	Error *string   `json:"error" example:"invalid transaction type in filter: 'x'"` // The error, if any occurred
}

type DayLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/calendar/days/2024-01-31"`   // The day itself
	Calendar string `json:"calendar" example:"https://example.com/api/v1/calendar?month=2024-01"` // The calendar of the month the day is in
}

// Day is the API representation of a single calendar day.
type Day struct {
	calendar.Day
	Links DayLinks `json:"links"`
}

type DayResponse struct {
	Data  *Day    `json:"data"`                                                    // Data for the day
	Error *string `json:"error" example:"invalid transaction type in filter: 'x'"` // The error, if any occurred
}

// withQuery returns the URL with the filter parameters of query and the
// month parameter set to month. An empty month removes the parameter.
func withQuery(base string, query url.Values, month string) string {
	q := url.Values{}
	for key, values := range query {
		if key == "month" {
			continue
		}
		q[key] = values
	}

	if month != "" {
		q.Set("month", month)
	}

	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
