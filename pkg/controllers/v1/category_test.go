package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/duecal/backend/pkg/controllers/v1"
	"github.com/duecal/backend/pkg/models"
	"github.com/duecal/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(_ *testing.T) {
				suite.createTestCategory(v1.CategoryEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/categories", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.CategoryListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestCategoriesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Categories endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Category with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Category exists", suite.createTestCategory(v1.CategoryEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/categories", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesCreate() {
	a := suite.createTestCategory(v1.CategoryEditable{Name: "  Housing  ", Note: "Rent and utilities"})

	assert.Equal(suite.T(), "Housing", a.Data.Name, "whitespace must be trimmed")
	assert.Equal(suite.T(), "Rent and utilities", a.Data.Note)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/categories/%s", a.Data.ID), a.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?category=%s", a.Data.ID), a.Data.Links.Transactions)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/calendar?category=%s", a.Data.ID), a.Data.Links.Calendar)
}

func (suite *TestSuiteStandard) TestCategoriesCreateFails() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Duplicate"})

	tests := []struct {
		name   string
		body   any
		status int
		errMsg string
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, "json: cannot unmarshal number"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Duplicate name", []v1.CategoryEditable{{Name: "Duplicate"}}, http.StatusBadRequest, models.ErrCategoryNameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CategoryCreateResponse
			test.DecodeResponse(t, &r, &response)

			if response.Error != nil {
				assert.Contains(t, *response.Error, tt.errMsg)
				return
			}

			if assert.Len(t, response.Data, 1) {
				assert.Contains(t, *response.Data[0].Error, tt.errMsg)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	a := suite.createTestCategory(v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Category", a.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Category with ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Housing", Note: "Daily stuff"})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Salary", Note: ""})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Old housing", Note: "Closed", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Name fuzzy", "name=ousing", 2},
		{"Note empty", "note=", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Search", "search=daily", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, int64(3), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	a := suite.createTestCategory(v1.CategoryEditable{Name: "Housing", Note: "Keep me"})

	r := test.Request(suite.T(), http.MethodPatch, a.Data.Links.Self, map[string]any{
		"name":     "Living",
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Living", response.Data.Name)
	assert.True(suite.T(), response.Data.Archived)
	assert.Equal(suite.T(), "Keep me", response.Data.Note, "fields that are not sent must not change")
}

func (suite *TestSuiteStandard) TestCategoriesUpdateFails() {
	a := suite.createTestCategory(v1.CategoryEditable{})
	_ = suite.createTestCategory(v1.CategoryEditable{Name: "Taken"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/categories/nope", `{"name": "x"}`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/categories/%s", uuid.New()), `{"name": "x"}`, http.StatusNotFound},
		{"Broken body", a.Data.Links.Self, `{"name": 2}`, http.StatusBadRequest},
		{"Empty body", a.Data.Links.Self, "", http.StatusBadRequest},
		{"Duplicate name", a.Data.Links.Self, `{"name": "Taken"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	a := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Already deleted", a.Data.ID.String(), http.StatusNotFound},
		{"Invalid ID", "nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
