// Package calendar turns transactions into calendar events, groups them by
// day and derives the dominant status and color of each day.
package calendar

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of the date keys of events and the day index.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a transaction carries a date that cannot be parsed.
var ErrInvalidDate = errors.New("invalid date")

// swagger:enum TransactionType
type TransactionType string

const (
	TypeIncome          TransactionType = "income"
	TypeFixedExpense    TransactionType = "fixed_expense"
	TypeVariableExpense TransactionType = "variable_expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeFixedExpense || t == TypeVariableExpense
}

// IsExpense reports whether the type reduces the balance.
func (t TransactionType) IsExpense() bool {
	return t == TypeFixedExpense || t == TypeVariableExpense
}

// swagger:enum TransactionStatus
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionExecuted  TransactionStatus = "executed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// Valid reports whether s is a known transaction status.
func (s TransactionStatus) Valid() bool {
	return s == TransactionPending || s == TransactionExecuted || s == TransactionCancelled
}

// Transaction is a financial record as returned by the transaction query service.
//
// Dates are kept in their wire representation, either RFC3339 timestamps or
// plain YYYY-MM-DD dates, and are parsed when events are derived.
type Transaction struct {
	ID           string            `json:"id"`
	Type         TransactionType   `json:"type"`
	Amount       decimal.Decimal   `json:"amount"`
	Description  string            `json:"description"`
	DueDate      string            `json:"dueDate"`
	ExecutedDate string            `json:"executedDate,omitempty"`
	Status       TransactionStatus `json:"status"`
	Recurring    bool              `json:"recurring"`
	CategoryID   string            `json:"categoryId,omitempty"`
	CategoryName string            `json:"categoryName,omitempty"`
}

// swagger:enum Status
type Status string

// The due status of an event. It is derived from the transaction and is
// not the same as the transaction's own status.
const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// swagger:enum Color
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorGray   Color = "gray"
)

// Event is the calendar view of a single transaction.
type Event struct {
	ID           string          `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the transaction
	Date         string          `json:"date" example:"2024-01-31"`                         // Due date, used as the day key
	Type         TransactionType `json:"type" example:"fixed_expense"`                      // Type of the transaction
	Amount       decimal.Decimal `json:"amount" example:"100"`                              // Amount of the transaction
	Description  string          `json:"description" example:"Rent"`                        // Description of the transaction
	CategoryName string          `json:"categoryName" example:"Housing"`                    // Name of the category, if any
	Status       Status          `json:"status" example:"pending"`                          // Derived due status
	DaysUntilDue int             `json:"daysUntilDue" example:"3"`                          // Days until the due date, negative when overdue
	Color        Color           `json:"displayColor" example:"yellow"`                     // Display color
	Recurring    bool            `json:"recurring" example:"false"`                         // Is the transaction recurring?
}
