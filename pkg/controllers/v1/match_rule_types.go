package v1

import (
	"fmt"

	ez_uuid "github.com/duecal/backend/internal/uuid"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchRuleEditable struct {
	CategoryID uuid.UUID `json:"categoryId" example:"1f7e0a33-5b2c-4f1e-9d7a-2c5e8b6f4a10"` // The category to assign to matching transactions
	Priority   uint      `json:"priority" example:"3"`                                      // The priority of the match rule. Higher priorities are evaluated first.
	Match      string    `json:"match" example:"Rent*"`                                     // The glob pattern matched against the transaction description. Globbing is case sensitive.
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		CategoryID: editable.CategoryID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type MatchRuleListResponse struct {
	Data       []MatchRule `json:"data"`                                                          // List of Match Rules
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type MatchRuleCreateResponse struct {
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []MatchRuleResponse `json:"data"`                                                          // List of created Match Rules
}

func (m *MatchRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	m.Data = append(m.Data, MatchRuleResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type MatchRuleResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this Match Rule
	Data  *MatchRule `json:"data"`                                                          // The Match Rule data, if creation was successful
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

// MatchRule is the API representation of a Match Rule.
type MatchRule struct {
	models.DefaultModel
	MatchRuleEditable
	Links MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	url := c.GetString(string(models.DBContextURL))

	return MatchRule{
		DefaultModel: model.DefaultModel,
		MatchRuleEditable: MatchRuleEditable{
			CategoryID: model.CategoryID,
			Priority:   model.Priority,
			Match:      model.Match,
		},
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", url, model.ID),
		},
	}
}

// MatchRuleQueryFilter contains the fields that Match Rules can be filtered with.
type MatchRuleQueryFilter struct {
	Priority   uint         `form:"priority"`                   // By priority
	Match      string       `form:"match" filterField:"false"`  // By match
	CategoryID ez_uuid.UUID `form:"category"`                   // By ID of the Category they assign
	Offset     uint         `form:"offset" filterField:"false"` // The offset of the first Match Rule returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`  // Maximum number of Match Rules to return. Defaults to 50.
}

func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		Priority:   f.Priority,
		CategoryID: f.CategoryID.UUID,
	}
}
