package v1

import (
	"fmt"

	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

type CategoryEditable struct {
	Name     string `json:"name" example:"Housing" default:""`            // Name of the category
	Note     string `json:"note" example:"Rent and utilities" default:""` // A longer description for the category
	Archived bool   `json:"archived" example:"false" default:"false"`     // Is the category archived?
}

// model returns the database resource for the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:     editable.Name,
		Note:     editable.Note,
		Archived: editable.Archived,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/1f7e0a33-5b2c-4f1e-9d7a-2c5e8b6f4a10"`                    // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=1f7e0a33-5b2c-4f1e-9d7a-2c5e8b6f4a10"` // Transactions of the category
	Calendar     string `json:"calendar" example:"https://example.com/api/v1/calendar?category=1f7e0a33-5b2c-4f1e-9d7a-2c5e8b6f4a10"`         // Calendar of the category for the current month
}

// Category is the API representation of a Category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:     model.Name,
			Note:     model.Note,
			Archived: model.Archived,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", url, model.ID),
			Calendar:     fmt.Sprintf("%s/v1/calendar?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CategoryResponse `json:"data"`                                                          // List of created Categories
}

func (a *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
}

type CategoryQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the category name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Archived bool   `form:"archived"`                   // Is the category archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() models.Category {
	return models.Category{
		Archived: f.Archived,
	}
}
