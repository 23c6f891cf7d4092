package models_test

import (
	"github.com/duecal/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	name := "\t Checking "
	note := "  Main account\n"

	account := suite.createTestAccount(models.Account{Name: name, Note: note})

	suite.Assert().Equal("Checking", account.Name)
	suite.Assert().Equal("Main account", account.Note)
}

func (suite *TestSuiteStandard) TestAccountNameNotUnique() {
	suite.createTestAccount(models.Account{Name: "Checking"})

	err := models.DB.Create(&models.Account{Name: "Checking"}).Error
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
}
