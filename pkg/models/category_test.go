package models_test

import (
	"github.com/duecal/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{Name: " Housing\t", Note: "\nRent and utilities "})

	suite.Assert().Equal("Housing", category.Name)
	suite.Assert().Equal("Rent and utilities", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameNotUnique() {
	suite.createTestCategory(models.Category{Name: "Housing"})

	err := models.DB.Create(&models.Category{Name: "Housing"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)
}
