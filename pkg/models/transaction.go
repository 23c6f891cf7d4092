package models

import (
	"strings"
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an income or an expense that is due at a specific time.
type Transaction struct {
	DefaultModel
	AccountID    *uuid.UUID
	Account      Account
	CategoryID   *uuid.UUID
	Category     Category
	Type         calendar.TransactionType
	Status       calendar.TransactionStatus
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description  string
	DueDate      time.Time
	ExecutedDate *time.Time
	Recurring    bool
}

// AfterFind sets the location of all dates to UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.DueDate = *utc(&t.DueDate)
	t.ExecutedDate = utc(t.ExecutedDate)

	return nil
}

// BeforeSave
//   - validates type, status and amount
//   - defaults the status to pending and the due date to now
//   - sets the timezone for all dates to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Status == "" {
		t.Status = calendar.TransactionPending
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Status.Valid() {
		return ErrTransactionStatusInvalid
	}

	if t.Amount.IsNegative() {
		return ErrTransactionAmountNegative
	}

	// Use actual nil values, not pointers to the nil UUID
	if t.AccountID != nil && *t.AccountID == uuid.Nil {
		t.AccountID = nil
	}

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.DueDate.IsZero() {
		t.DueDate = time.Now()
	}
	t.DueDate = *utc(&t.DueDate)
	t.ExecutedDate = utc(t.ExecutedDate)

	return nil
}

// BeforeCreate sets the ID and assigns a category from the match rules
// when no category is set.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	err := t.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if (t.CategoryID != nil && *t.CategoryID != uuid.Nil) || t.Description == "" {
		return nil
	}

	categoryID, err := matchCategory(tx, strings.TrimSpace(t.Description))
	if err != nil {
		return err
	}
	t.CategoryID = categoryID

	return nil
}

// Calendar returns the transaction in the representation the calendar
// derives events from.
func (t Transaction) Calendar() calendar.Transaction {
	ct := calendar.Transaction{
		ID:           t.ID.String(),
		Type:         t.Type,
		Amount:       t.Amount,
		Description:  t.Description,
		DueDate:      t.DueDate.Format(time.RFC3339Nano),
		Status:       t.Status,
		Recurring:    t.Recurring,
		CategoryName: t.Category.Name,
	}

	if t.ExecutedDate != nil {
		ct.ExecutedDate = t.ExecutedDate.Format(time.RFC3339Nano)
	}

	if t.CategoryID != nil {
		ct.CategoryID = t.CategoryID.String()
	}

	return ct
}
