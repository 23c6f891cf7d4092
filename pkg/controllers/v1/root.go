package v1

import (
	"net/http"

	"github.com/duecal/backend/pkg/httputil"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the root of the v1 API and all resources below it.
func (co Controller) RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.DELETE("", co.Cleanup)
	r.OPTIONS("", co.Options)

	co.RegisterAccountRoutes(r.Group("/accounts"))
	co.RegisterCategoryRoutes(r.Group("/categories"))
	co.RegisterTransactionRoutes(r.Group("/transactions"))
	co.RegisterMatchRuleRoutes(r.Group("/match-rules"))
	co.RegisterCalendarRoutes(r.Group("/calendar"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`         // URL of Account collection endpoint
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of Category collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of Transaction collection endpoint
	MatchRules   string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`    // URL of Match Rule collection endpoint
	Calendar     string `json:"calendar" example:"https://example.com/api/v1/calendar"`         // URL of the calendar for the current month
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func (co Controller) Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:     url + "/v1/accounts",
			Categories:   url + "/v1/categories",
			Transactions: url + "/v1/transactions",
			MatchRules:   url + "/v1/match-rules",
			Calendar:     url + "/v1/calendar",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
