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

func (suite *TestSuiteStandard) TestMatchRulesDBClosed() {
	category := suite.createTestCategory(v1.CategoryEditable{})
	suite.CloseDB()

	suite.createTestMatchRule(v1.MatchRuleEditable{CategoryID: category.Data.ID, Match: "Rent*"}, http.StatusInternalServerError)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Match Rule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Match Rule exists", suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Rent*"}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	category := suite.createTestCategory(v1.CategoryEditable{Name: "Housing"})

	tests := []struct {
		name     string
		editable v1.MatchRuleEditable
		status   int
	}{
		{"Valid", v1.MatchRuleEditable{CategoryID: category.Data.ID, Match: "Rent*", Priority: 2}, http.StatusCreated},
		{"Empty match", v1.MatchRuleEditable{CategoryID: category.Data.ID, Match: "   "}, http.StatusBadRequest},
		{"Category does not exist", v1.MatchRuleEditable{CategoryID: uuid.New(), Match: "Rent*"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", []v1.MatchRuleEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.MatchRuleCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusCreated {
				assert.Equal(t, tt.editable.Match, response.Data[0].Data.Match)
				assert.Equal(t, tt.editable.Priority, response.Data[0].Data.Priority)
				assert.Equal(t, fmt.Sprintf("http://example.com/v1/match-rules/%s", response.Data[0].Data.ID), response.Data[0].Data.Links.Self)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesGetFilter() {
	housing := suite.createTestCategory(v1.CategoryEditable{Name: "Housing"})
	salary := suite.createTestCategory(v1.CategoryEditable{Name: "Salary"})

	_ = suite.createTestMatchRule(v1.MatchRuleEditable{CategoryID: housing.Data.ID, Match: "Rent*", Priority: 1})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{CategoryID: housing.Data.ID, Match: "Electricity*", Priority: 5})
	_ = suite.createTestMatchRule(v1.MatchRuleEditable{CategoryID: salary.Data.ID, Match: "ACME Corp Salary*", Priority: 0})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Priority 0", "priority=0", 1},
		{"Priority 5", "priority=5", 1},
		{"Match fuzzy", "match=ent", 1},
		{"Category", fmt.Sprintf("category=%s", housing.Data.ID), 2},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	// Highest priority first
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Electricity*", response.Data[0].Match)
	assert.Equal(suite.T(), "ACME Corp Salary*", response.Data[2].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesGetInvalidFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules?category=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesGetSingle() {
	m := suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Rent*"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing Match Rule", m.Data.ID.String(), http.StatusOK},
		{"No Match Rule with ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "Definitely-Not-A-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	m := suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Rent*", Priority: 1})
	other := suite.createTestCategory(v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPatch, m.Data.Links.Self, map[string]any{
		"priority":   7,
		"categoryId": other.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), uint(7), response.Data.Priority)
	assert.Equal(suite.T(), other.Data.ID, response.Data.CategoryID)
	assert.Equal(suite.T(), "Rent*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdateFails() {
	m := suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Rent*"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
	}{
		{"Invalid ID", "http://example.com/v1/match-rules/nope", `{"match": "x"}`, http.StatusBadRequest},
		{"Not found", fmt.Sprintf("http://example.com/v1/match-rules/%s", uuid.New()), `{"match": "x"}`, http.StatusNotFound},
		{"Broken body", m.Data.Links.Self, `{"priority": "high"}`, http.StatusBadRequest},
		{"Empty match", m.Data.Links.Self, `{"match": " "}`, http.StatusBadRequest},
		{"Category does not exist", m.Data.Links.Self, fmt.Sprintf(`{"categoryId": "%s"}`, uuid.New()), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	m := suite.createTestMatchRule(v1.MatchRuleEditable{Match: "Rent*"})

	r := test.Request(suite.T(), http.MethodDelete, m.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, m.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
