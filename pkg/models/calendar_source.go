package models

import (
	"context"
	"fmt"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarSource reads the transactions for the calendar from the database.
//
// If DB is nil, the package level DB is used.
type CalendarSource struct {
	DB *gorm.DB
}

func (s CalendarSource) db() *gorm.DB {
	if s.DB != nil {
		return s.DB
	}
	return DB
}

// Transactions returns all transactions due within the window that match
// the filter, ordered by due date.
func (s CalendarSource) Transactions(ctx context.Context, window calendar.Window, filter calendar.Filter) ([]calendar.Transaction, error) {
	q := s.db().
		WithContext(ctx).
		Preload("Category").
		Order("datetime(transactions.due_date) ASC, transactions.created_at ASC").
		Where("datetime(transactions.due_date) >= datetime(?)", window.Start.UTC()).
		Where("datetime(transactions.due_date) < datetime(?)", window.End.UTC())

	q, err := FilterTransactions(q, filter)
	if err != nil {
		return nil, err
	}

	var transactions []Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	result := make([]calendar.Transaction, 0, len(transactions))
	for _, t := range transactions {
		result = append(result, t.Calendar())
	}

	return result, nil
}

// FilterTransactions restricts a transaction query to the types, statuses,
// categories and account of the filter. Empty filter fields do not restrict.
func FilterTransactions(q *gorm.DB, filter calendar.Filter) (*gorm.DB, error) {
	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		q = q.Where("transactions.type IN ?", types)
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		q = q.Where("transactions.status IN ?", statuses)
	}

	if len(filter.Categories) > 0 {
		ids := make([]uuid.UUID, 0, len(filter.Categories))
		for _, c := range filter.Categories {
			id, err := uuid.Parse(c)
			if err != nil {
				return nil, fmt.Errorf("invalid category ID '%s' in filter: %w", c, err)
			}
			ids = append(ids, id)
		}
		q = q.Where("transactions.category_id IN ?", ids)
	}

	if filter.AccountID != "" {
		id, err := uuid.Parse(filter.AccountID)
		if err != nil {
			return nil, fmt.Errorf("invalid account ID '%s' in filter: %w", filter.AccountID, err)
		}
		q = q.Where("transactions.account_id = ?", id)
	}

	return q, nil
}
