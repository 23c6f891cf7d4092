package calendar

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

var (
	ErrFilterTypeInvalid   = errors.New("invalid transaction type in filter")
	ErrFilterStatusInvalid = errors.New("invalid transaction status in filter")
)

// Filter restricts the transactions the source returns. Empty fields do
// not restrict anything.
type Filter struct {
	Types      []TransactionType   `form:"type"`     // Transaction types to include
	Categories []string            `form:"category"` // IDs of categories to include
	Statuses   []TransactionStatus `form:"status"`   // Transaction statuses to include
	AccountID  string              `form:"account"`  // ID of the account to include
}

// Validate checks that all types and statuses are known.
func (f Filter) Validate() error {
	for _, t := range f.Types {
		if !t.Valid() {
			return fmt.Errorf("%w: '%s'", ErrFilterTypeInvalid, t)
		}
	}

	for _, s := range f.Statuses {
		if !s.Valid() {
			return fmt.Errorf("%w: '%s'", ErrFilterStatusInvalid, s)
		}
	}

	return nil
}

// Key returns a canonical representation of the filter. Two filters that
// select the same transactions have the same key, regardless of the order
// of their values.
func (f Filter) Key() string {
	types := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		types = append(types, string(t))
	}

	statuses := make([]string, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses = append(statuses, string(s))
	}

	return strings.Join([]string{
		"type=" + canonical(types),
		"category=" + canonical(f.Categories),
		"status=" + canonical(statuses),
		"account=" + f.AccountID,
	}, "&")
}

// canonical sorts and deduplicates values and joins them.
func canonical(values []string) string {
	v := slices.Clone(values)
	slices.Sort(v)
	v = slices.Compact(v)
	return strings.Join(v, ",")
}
