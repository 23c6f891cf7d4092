package calendar

import (
	"fmt"
	"time"
)

// day is the length of a calendar day for the due countdown.
const day = 24 * time.Hour

// Transformer converts transactions into events.
//
// Location is used for the date keys of the events. A nil Location means UTC.
type Transformer struct {
	Location *time.Location
}

// Transform converts transactions into events with the default Transformer.
func Transform(transactions []Transaction, now time.Time) ([]Event, error) {
	return Transformer{}.Transform(transactions, now)
}

// Transform returns one event per transaction, in the order of the input.
//
// If any transaction carries an unparseable date, no events are returned.
func (t Transformer) Transform(transactions []Transaction, now time.Time) ([]Event, error) {
	events := make([]Event, 0, len(transactions))

	for _, transaction := range transactions {
		event, err := t.event(transaction, now)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

func (t Transformer) location() *time.Location {
	if t.Location == nil {
		return time.UTC
	}
	return t.Location
}

func (t Transformer) event(transaction Transaction, now time.Time) (Event, error) {
	due, err := ParseDate(transaction.DueDate, t.location())
	if err != nil {
		return Event{}, fmt.Errorf("due date of transaction %s: %w", transaction.ID, err)
	}

	if transaction.ExecutedDate != "" {
		if _, err := ParseDate(transaction.ExecutedDate, t.location()); err != nil {
			return Event{}, fmt.Errorf("executed date of transaction %s: %w", transaction.ID, err)
		}
	}

	status := dueStatus(transaction, due, now)
	days := DaysUntil(due, now)

	return Event{
		ID:           transaction.ID,
		Date:         due.In(t.location()).Format(DateLayout),
		Type:         transaction.Type,
		Amount:       transaction.Amount,
		Description:  transaction.Description,
		CategoryName: transaction.CategoryName,
		Status:       status,
		DaysUntilDue: days,
		Color:        colorOf(status, days),
		Recurring:    transaction.Recurring,
	}, nil
}

// dueStatus derives the due status.
//
// Cancelled transactions are not treated specially and become overdue or
// pending depending on their due date.
func dueStatus(transaction Transaction, due, now time.Time) Status {
	if transaction.Status == TransactionExecuted || transaction.ExecutedDate != "" {
		return StatusPaid
	}

	if due.Before(now) {
		return StatusOverdue
	}

	return StatusPending
}

// DaysUntil returns the number of days from now until due, rounded up.
// The result is negative when due is in the past.
func DaysUntil(due, now time.Time) int {
	d := due.Sub(now)
	days := d / day

	// Integer division truncates towards zero, which already is the
	// ceiling for negative durations.
	if d%day > 0 {
		days++
	}

	return int(days)
}

// ParseDate parses an RFC3339 timestamp or a YYYY-MM-DD date. Plain dates
// are interpreted as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w '%s'", ErrInvalidDate, s)
	}

	return t, nil
}
