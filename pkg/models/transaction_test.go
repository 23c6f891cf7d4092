package models_test

import (
	"testing"
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	executed := time.Date(2024, 1, 2, 8, 0, 0, 0, tz)

	transaction := models.Transaction{
		DueDate:      time.Date(2024, 1, 3, 0, 30, 0, 0, tz),
		ExecutedDate: &executed,
	}

	err := transaction.AfterFind(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(time.UTC, transaction.DueDate.Location())
	suite.Assert().Equal(time.UTC, transaction.ExecutedDate.Location())
}

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	before := time.Now().Add(-time.Second)

	transaction := models.Transaction{Type: calendar.TypeIncome, Description: "  Salary "}
	suite.Require().Nil(models.DB.Create(&transaction).Error)

	suite.Assert().Equal(calendar.TransactionPending, transaction.Status)
	suite.Assert().Equal("Salary", transaction.Description)
	suite.Assert().Equal(time.UTC, transaction.DueDate.Location())
	suite.Assert().True(transaction.DueDate.After(before))
	suite.Assert().NotEqual(uuid.Nil, transaction.ID)
}

func (suite *TestSuiteStandard) TestTransactionNilUUIDs() {
	transaction := suite.createTestTransaction(models.Transaction{AccountID: &uuid.Nil, CategoryID: &uuid.Nil})

	suite.Assert().Nil(transaction.AccountID)
	suite.Assert().Nil(transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Missing type", models.Transaction{Amount: decimal.NewFromInt(1)}, models.ErrTransactionTypeInvalid},
		{"Invalid type", models.Transaction{Type: "gift"}, models.ErrTransactionTypeInvalid},
		{"Invalid status", models.Transaction{Type: calendar.TypeIncome, Status: "lost"}, models.ErrTransactionStatusInvalid},
		{"Negative amount", models.Transaction{Type: calendar.TypeIncome, Amount: decimal.NewFromInt(-5)}, models.ErrTransactionAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionReferenceNotFound() {
	id := uuid.New()
	err := models.DB.Create(&models.Transaction{Type: calendar.TypeIncome, AccountID: &id}).Error
	suite.Assert().ErrorIs(err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionCalendar() {
	category := suite.createTestCategory(models.Category{Name: "Housing"})
	executed := time.Date(2024, 1, 14, 9, 0, 0, 0, time.UTC)

	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID:   &category.ID,
		Type:         calendar.TypeFixedExpense,
		Status:       calendar.TransactionExecuted,
		Amount:       decimal.NewFromInt(900),
		Description:  "Rent",
		DueDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		ExecutedDate: &executed,
		Recurring:    true,
	})

	var found models.Transaction
	suite.Require().Nil(models.DB.Preload("Category").First(&found, transaction.ID).Error)

	ct := found.Calendar()
	suite.Assert().Equal(transaction.ID.String(), ct.ID)
	suite.Assert().Equal(calendar.TypeFixedExpense, ct.Type)
	suite.Assert().Equal(calendar.TransactionExecuted, ct.Status)
	suite.Assert().True(decimal.NewFromInt(900).Equal(ct.Amount))
	suite.Assert().Equal("Rent", ct.Description)
	suite.Assert().Equal("2024-01-15T00:00:00Z", ct.DueDate)
	suite.Assert().Equal("2024-01-14T09:00:00Z", ct.ExecutedDate)
	suite.Assert().True(ct.Recurring)
	suite.Assert().Equal(category.ID.String(), ct.CategoryID)
	suite.Assert().Equal("Housing", ct.CategoryName)
}

func (suite *TestSuiteStandard) TestTransactionCalendarWithoutOptionals() {
	ct := models.Transaction{Type: calendar.TypeIncome, DueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}.Calendar()

	suite.Assert().Empty(ct.ExecutedDate)
	suite.Assert().Empty(ct.CategoryID)
	suite.Assert().Empty(ct.CategoryName)
}
