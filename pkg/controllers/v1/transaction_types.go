package v1

import (
	"fmt"
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	AccountID  *uuid.UUID                 `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`  // ID of the account
	CategoryID *uuid.UUID                 `json:"categoryId" example:"1f7e0a33-5b2c-4f1e-9d7a-2c5e8b6f4a10"` // ID of the category. If not set, match rules are used to find one.
	Type       calendar.TransactionType   `json:"type" example:"fixed_expense"`                              // The type of the transaction
	Status     calendar.TransactionStatus `json:"status" example:"pending" default:"pending"`                // The status of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1250.00" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction

	Description  string     `json:"description" example:"Rent" default:""`       // What the transaction is for
	DueDate      time.Time  `json:"dueDate" example:"2024-02-01T00:00:00Z"`      // When the transaction is due. Defaults to now.
	ExecutedDate *time.Time `json:"executedDate" example:"2024-01-31T09:12:00Z"` // When the transaction was executed
	Recurring    bool       `json:"recurring" example:"true" default:"false"`    // Does the transaction repeat?
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:    editable.AccountID,
		CategoryID:   editable.CategoryID,
		Type:         editable.Type,
		Status:       editable.Status,
		Amount:       editable.Amount,
		Description:  editable.Description,
		DueDate:      editable.DueDate,
		ExecutedDate: editable.ExecutedDate,
		Recurring:    editable.Recurring,
	}
}

// validate checks the fields that are updated.
//
// Hooks run on the stored transaction when updating, they do not see the new values.
func (editable TransactionEditable) validate(fields []any) error {
	if slices.Contains(fields, any("Type")) && !editable.Type.Valid() {
		return models.ErrTransactionTypeInvalid
	}

	if slices.Contains(fields, any("Status")) && !editable.Status.Valid() {
		return models.ErrTransactionStatusInvalid
	}

	if slices.Contains(fields, any("Amount")) && editable.Amount.IsNegative() {
		return models.ErrTransactionAmountNegative
	}

	return nil
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Day  string `json:"day" example:"https://example.com/api/v1/calendar/days/2024-02-01"`                           // The calendar day the transaction is due on
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	CategoryName string           `json:"categoryName" example:"Housing"` // Name of the category
	Links        TransactionLinks `json:"links"`
}

// newTransaction returns the API representation of the resource.
//
// The category must be preloaded for the category name to be set.
func (co Controller) newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID:    model.AccountID,
			CategoryID:   model.CategoryID,
			Type:         model.Type,
			Status:       model.Status,
			Amount:       model.Amount,
			Description:  model.Description,
			DueDate:      model.DueDate,
			ExecutedDate: model.ExecutedDate,
			Recurring:    model.Recurring,
		},
		CategoryName: model.Category.Name,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Day:  fmt.Sprintf("%s/v1/calendar/days/%s", url, model.DueDate.In(co.location()).Format(calendar.DateLayout)),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	FromDate    time.Time                    `form:"fromDate" filterField:"false"`    // Due at or after this date. Time is ignored.
	UntilDate   time.Time                    `form:"untilDate" filterField:"false"`   // Due at or before this date. Time is ignored.
	DueFrom     time.Time                    `form:"dueFrom" filterField:"false"`     // Due at or after this instant
	DueBefore   time.Time                    `form:"dueBefore" filterField:"false"`   // Due before this instant
	Types       []calendar.TransactionType   `form:"type" filterField:"false"`        // By type
	Statuses    []calendar.TransactionStatus `form:"status" filterField:"false"`      // By status
	CategoryIDs []string                     `form:"category" filterField:"false"`    // By ID of the category
	AccountID   string                       `form:"account" filterField:"false"`     // By ID of the account
	Recurring   bool                         `form:"recurring"`                       // Is the transaction recurring?
	Description string                       `form:"description" filterField:"false"` // Fuzzy filter for the description
	Offset      uint                         `form:"offset" filterField:"false"`      // The offset of the first Transaction returned. Defaults to 0.
	Limit       int                          `form:"limit" filterField:"false"`       // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Recurring: f.Recurring,
	}
}

// calendarFilter returns the filter shared with the calendar.
func (f TransactionQueryFilter) calendarFilter() calendar.Filter {
	return calendar.Filter{
		Types:      f.Types,
		Categories: f.CategoryIDs,
		Statuses:   f.Statuses,
		AccountID:  f.AccountID,
	}
}
