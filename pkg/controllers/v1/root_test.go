package v1_test

import (
	"net/http"

	v1 "github.com/duecal/backend/pkg/controllers/v1"
	"github.com/duecal/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRootGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		Accounts:     "http://example.com/v1/accounts",
		Categories:   "http://example.com/v1/categories",
		Transactions: "http://example.com/v1/transactions",
		MatchRules:   "http://example.com/v1/match-rules",
		Calendar:     "http://example.com/v1/calendar",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestRootOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, DELETE", r.Header().Get("allow"))
}
