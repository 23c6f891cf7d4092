package models_test

import (
	"context"
	"time"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/models"
	"github.com/shopspring/decimal"
)

var january = calendar.Window{
	Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
}

func (suite *TestSuiteStandard) TestCalendarSourceWindow() {
	suite.createTestTransaction(models.Transaction{Description: "December", DueDate: time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)})
	suite.createTestTransaction(models.Transaction{Description: "Start", DueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(models.Transaction{Description: "End", DueDate: time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)})
	suite.createTestTransaction(models.Transaction{Description: "February", DueDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)})

	transactions, err := models.CalendarSource{}.Transactions(context.Background(), january, calendar.Filter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)
	suite.Assert().Equal("Start", transactions[0].Description)
	suite.Assert().Equal("End", transactions[1].Description)
}

func (suite *TestSuiteStandard) TestCalendarSourceWindowTimezone() {
	tz, _ := time.LoadLocation("Europe/Berlin")
	window := calendar.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, tz),
		End:   time.Date(2024, 2, 1, 0, 0, 0, 0, tz),
	}

	// 2023-12-31T23:30Z is already January 1st in Berlin
	suite.createTestTransaction(models.Transaction{Description: "New Year", DueDate: time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC)})
	// 2024-01-31T23:30Z is February 1st in Berlin
	suite.createTestTransaction(models.Transaction{Description: "February", DueDate: time.Date(2024, 1, 31, 23, 30, 0, 0, time.UTC)})

	transactions, err := models.CalendarSource{}.Transactions(context.Background(), window, calendar.Filter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("New Year", transactions[0].Description)
}

func (suite *TestSuiteStandard) TestCalendarSourceOrder() {
	suite.createTestTransaction(models.Transaction{Description: "Third", DueDate: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(models.Transaction{Description: "First", DueDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)})
	suite.createTestTransaction(models.Transaction{Description: "Second", DueDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)})

	transactions, err := models.CalendarSource{}.Transactions(context.Background(), january, calendar.Filter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 3)
	suite.Assert().Equal("First", transactions[0].Description)
	suite.Assert().Equal("Second", transactions[1].Description)
	suite.Assert().Equal("Third", transactions[2].Description)
}

func (suite *TestSuiteStandard) TestCalendarSourceFilter() {
	checking := suite.createTestAccount(models.Account{Name: "Checking"})
	savings := suite.createTestAccount(models.Account{Name: "Savings"})
	housing := suite.createTestCategory(models.Category{Name: "Housing"})
	food := suite.createTestCategory(models.Category{Name: "Food"})

	suite.createTestTransaction(models.Transaction{Description: "Salary", Type: calendar.TypeIncome, AccountID: &checking.ID, Amount: decimal.NewFromInt(3000)})
	suite.createTestTransaction(models.Transaction{Description: "Rent", Type: calendar.TypeFixedExpense, AccountID: &checking.ID, CategoryID: &housing.ID})
	suite.createTestTransaction(models.Transaction{Description: "Groceries", Type: calendar.TypeVariableExpense, AccountID: &savings.ID, CategoryID: &food.ID, Status: calendar.TransactionExecuted})
	suite.createTestTransaction(models.Transaction{Description: "Gym", Type: calendar.TypeFixedExpense, AccountID: &savings.ID, Status: calendar.TransactionCancelled})

	tests := []struct {
		name   string
		filter calendar.Filter
		want   []string
	}{
		{"None", calendar.Filter{}, []string{"Salary", "Rent", "Groceries", "Gym"}},
		{"Type", calendar.Filter{Types: []calendar.TransactionType{calendar.TypeIncome}}, []string{"Salary"}},
		{"Multiple types", calendar.Filter{Types: []calendar.TransactionType{calendar.TypeFixedExpense, calendar.TypeVariableExpense}}, []string{"Rent", "Groceries", "Gym"}},
		{"Status", calendar.Filter{Statuses: []calendar.TransactionStatus{calendar.TransactionExecuted, calendar.TransactionCancelled}}, []string{"Groceries", "Gym"}},
		{"Category", calendar.Filter{Categories: []string{housing.ID.String()}}, []string{"Rent"}},
		{"Account", calendar.Filter{AccountID: savings.ID.String()}, []string{"Groceries", "Gym"}},
		{"Combined", calendar.Filter{AccountID: checking.ID.String(), Types: []calendar.TransactionType{calendar.TypeFixedExpense}}, []string{"Rent"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transactions, err := models.CalendarSource{}.Transactions(context.Background(), january, tt.filter)
			suite.Require().Nil(err)

			descriptions := make([]string, 0, len(transactions))
			for _, t := range transactions {
				descriptions = append(descriptions, t.Description)
			}
			suite.Assert().ElementsMatch(tt.want, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestCalendarSourceCategoryName() {
	housing := suite.createTestCategory(models.Category{Name: "Housing"})
	suite.createTestTransaction(models.Transaction{Description: "Rent", CategoryID: &housing.ID})

	transactions, err := models.CalendarSource{DB: models.DB}.Transactions(context.Background(), january, calendar.Filter{})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("Housing", transactions[0].CategoryName)
}

func (suite *TestSuiteStandard) TestCalendarSourceInvalidIDs() {
	_, err := models.CalendarSource{}.Transactions(context.Background(), january, calendar.Filter{Categories: []string{"not-a-uuid"}})
	suite.Assert().ErrorContains(err, "invalid category ID 'not-a-uuid'")

	_, err = models.CalendarSource{}.Transactions(context.Background(), january, calendar.Filter{AccountID: "nope"})
	suite.Assert().ErrorContains(err, "invalid account ID 'nope'")
}

func (suite *TestSuiteStandard) TestCalendarSourceDatabaseClosed() {
	suite.CloseDB()

	_, err := models.CalendarSource{}.Transactions(context.Background(), january, calendar.Filter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
