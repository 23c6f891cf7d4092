package calendar

import (
	"context"
	"time"
)

// Window is a half open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Source is the transaction query service the calendar is built from.
//
// Implementations apply the filter themselves. The calendar does not
// filter transactions it receives.
type Source interface {
	Transactions(ctx context.Context, window Window, filter Filter) ([]Transaction, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, window Window, filter Filter) ([]Transaction, error)

func (f SourceFunc) Transactions(ctx context.Context, window Window, filter Filter) ([]Transaction, error) {
	return f(ctx, window, filter)
}
