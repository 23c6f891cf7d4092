package calendar

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Index groups events by their date key.
//
// An Index is never modified after it has been built. To reflect new data,
// build a new one.
type Index struct {
	days     map[string][]Event
	count    int
	location *time.Location
}

// NewIndex groups events by date. Within a day, events keep their relative
// input order. Dates passed to Get are formatted in loc, nil means UTC.
func NewIndex(events []Event, loc *time.Location) Index {
	if loc == nil {
		loc = time.UTC
	}

	days := make(map[string][]Event)
	for _, e := range events {
		days[e.Date] = append(days[e.Date], e)
	}

	return Index{
		days:     days,
		count:    len(events),
		location: loc,
	}
}

// Get returns the events due on the day of t. The result is never nil.
func (i Index) Get(t time.Time) []Event {
	loc := i.location
	if loc == nil {
		loc = time.UTC
	}

	return i.GetKey(t.In(loc).Format(DateLayout))
}

// GetKey returns the events for a YYYY-MM-DD key. The result is never nil.
func (i Index) GetKey(key string) []Event {
	events, ok := i.days[key]
	if !ok {
		return []Event{}
	}

	return slices.Clone(events)
}

// Days returns the sorted keys of all days that have events.
func (i Index) Days() []string {
	keys := maps.Keys(i.days)
	slices.Sort(keys)
	return keys
}

// Len returns the number of events in the index.
func (i Index) Len() int {
	return i.count
}

// Map returns a copy of the grouping.
func (i Index) Map() map[string][]Event {
	m := make(map[string][]Event, len(i.days))
	for k, v := range i.days {
		m[k] = slices.Clone(v)
	}
	return m
}
