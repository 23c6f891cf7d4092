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

// TestAccountsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(_ *testing.T) {
				suite.createTestAccount(v1.AccountEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/accounts", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.AccountListResponse
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

// TestAccountsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestAccountsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Accounts endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Account with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Account exists", suite.createTestAccount(v1.AccountEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/accounts", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	a := suite.createTestAccount(v1.AccountEditable{Name: "  Checking  ", Note: "Salary goes here"})

	assert.Equal(suite.T(), "Checking", a.Data.Name, "whitespace must be trimmed")
	assert.Equal(suite.T(), "Salary goes here", a.Data.Note)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/accounts/%s", a.Data.ID), a.Data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?account=%s", a.Data.ID), a.Data.Links.Transactions)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/calendar?account=%s", a.Data.ID), a.Data.Links.Calendar)
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Duplicate"})

	tests := []struct {
		name   string
		body   any
		status int
		errMsg string
	}{
		{"Broken body", `[{ "name": 2 }]`, http.StatusBadRequest, "json: cannot unmarshal number"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Duplicate name", []v1.AccountEditable{{Name: "Duplicate"}}, http.StatusBadRequest, models.ErrAccountNameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AccountCreateResponse
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

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	a := suite.createTestAccount(v1.AccountEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Account", a.Data.ID.String(), http.StatusOK},
		{"ID nil", uuid.Nil.String(), http.StatusNotFound},
		{"No Account with ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFilter() {
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Checking", Note: "Daily use"})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Savings", Note: ""})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Old checking", Note: "Closed", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Name fuzzy", "name=hecking", 2},
		{"Note empty", "note=", 1},
		{"Archived", "archived=true", 1},
		{"Not archived", "archived=false", 2},
		{"Search", "search=daily", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, int64(3), response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	a := suite.createTestAccount(v1.AccountEditable{Name: "Checking", Note: "Keep me"})

	r := test.Request(suite.T(), http.MethodPatch, a.Data.Links.Self, map[string]any{
		"name":     "Main account",
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Main account", response.Data.Name)
	assert.True(suite.T(), response.Data.Archived)
	assert.Equal(suite.T(), "Keep me", response.Data.Note, "fields that are not sent must not change")
}

func (suite *TestSuiteStandard) TestAccountsUpdateFails() {
	a := suite.createTestAccount(v1.AccountEditable{})
	_ = suite.createTestAccount(v1.AccountEditable{Name: "Taken"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/accounts/nope", `{"name": "x"}`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/accounts/%s", uuid.New()), `{"name": "x"}`, http.StatusNotFound},
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

func (suite *TestSuiteStandard) TestAccountsDelete() {
	a := suite.createTestAccount(v1.AccountEditable{})

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
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
