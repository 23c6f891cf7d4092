package calendar

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/duecal/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// defaultCacheSize is the number of transaction batches kept by default.
const defaultCacheSize = 64

// Calendar is the derived view of a month.
type Calendar struct {
	Month  types.Month `json:"month" example:"2024-01"` // The month
	Events []Event     `json:"events"`                  // All events of the month, in the order the source returned them
	Days   []Day       `json:"days"`                    // Days that have events, ordered by date
	Stats  DayStats    `json:"stats"`                   // Statistics for the whole month
	Index  Index       `json:"-"`
}

// Service builds calendars from the transactions of a Source.
//
// Identical requests share a single fetch while it is in flight. Fetched
// transactions are kept for the configured TTL, events are derived on every
// request so that their status always reflects the current time.
type Service struct {
	source     Source
	now        func() time.Time
	location   *time.Location
	cache      *cache
	group      singleflight.Group
	generation atomic.Uint64
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocation sets the time zone in which days start and end.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.location = loc
		}
	}
}

// WithCache sets how long fetched transactions are reused and how many
// batches are kept. A ttl of zero disables the cache.
func WithCache(ttl time.Duration, size int) Option {
	return func(s *Service) {
		s.cache = newCache(ttl, size, func() time.Time { return s.now() })
	}
}

// NewService returns a Service reading from source.
func NewService(source Source, opts ...Option) *Service {
	s := &Service{
		source:   source,
		now:      time.Now,
		location: time.UTC,
	}
	s.cache = newCache(0, defaultCacheSize, func() time.Time { return s.now() })

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Location returns the time zone of the service.
func (s *Service) Location() *time.Location {
	return s.location
}

// Now returns the current time in the location of the service.
func (s *Service) Now() time.Time {
	return s.now().In(s.location)
}

// Month returns the calendar for a month.
func (s *Service) Month(ctx context.Context, month types.Month, filter Filter) (Calendar, error) {
	if err := filter.Validate(); err != nil {
		return Calendar{}, err
	}

	transactions, err := s.transactions(ctx, month, filter)
	if err != nil {
		return Calendar{}, err
	}

	start := time.Now()
	defer func() {
		transformDuration.Observe(time.Since(start).Seconds())
	}()

	events, err := Transformer{Location: s.location}.Transform(transactions, s.now())
	if err != nil {
		log.Error().Str("month", month.String()).Err(err).Msg("Calendar")
		return Calendar{}, fmt.Errorf("failed to load calendar: %w", err)
	}

	index := NewIndex(events, s.location)
	keys := index.Days()
	days := make([]Day, 0, len(keys))
	for _, key := range keys {
		days = append(days, index.ResolveDay(key))
	}

	return Calendar{
		Month:  month,
		Events: events,
		Days:   days,
		Stats:  Stats(events),
		Index:  index,
	}, nil
}

// Day returns a single day. date is a YYYY-MM-DD date or an RFC3339 timestamp.
func (s *Service) Day(ctx context.Context, date string, filter Filter) (Day, error) {
	t, err := ParseDate(date, s.location)
	if err != nil {
		return Day{}, err
	}

	return s.DayOf(ctx, t, filter)
}

// DayOf returns the day that contains t in the location of the service.
func (s *Service) DayOf(ctx context.Context, t time.Time, filter Filter) (Day, error) {
	t = t.In(s.location)

	cal, err := s.Month(ctx, types.MonthOf(t), filter)
	if err != nil {
		return Day{}, err
	}

	return cal.Index.ResolveDay(t.Format(DateLayout)), nil
}

// Invalidate drops all cached transactions. Fetches that are in flight
// when Invalidate is called do not populate the cache.
func (s *Service) Invalidate() {
	s.generation.Add(1)
	s.cache.clear()
}

func (s *Service) transactions(ctx context.Context, month types.Month, filter Filter) ([]Transaction, error) {
	key := month.String() + "?" + filter.Key()

	if transactions, ok := s.cache.get(key); ok {
		fetchCount.WithLabelValues(fetchHit).Inc()
		return transactions, nil
	}

	generation := s.generation.Load()
	window := Window{
		Start: month.Start(s.location),
		End:   month.End(s.location),
	}

	// The shared fetch outlives the caller that started it. Every caller
	// stops waiting when its own context is done.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key+"#"+strconv.FormatUint(generation, 10), func() (interface{}, error) {
		transactions, err := s.source.Transactions(fetchCtx, window, filter)
		if err != nil {
			return nil, err
		}

		if s.generation.Load() == generation {
			s.cache.set(key, transactions)
		}
		return transactions, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		res = singleflight.Result{Err: ctx.Err()}
	}

	if res.Err != nil {
		fetchCount.WithLabelValues(fetchError).Inc()
		log.Error().Str("month", month.String()).Err(res.Err).Msg("Calendar")
		return nil, fmt.Errorf("failed to load calendar: %w", res.Err)
	}

	if res.Shared {
		fetchCount.WithLabelValues(fetchShared).Inc()
	} else {
		fetchCount.WithLabelValues(fetchMiss).Inc()
	}

	return res.Val.([]Transaction), nil
}
