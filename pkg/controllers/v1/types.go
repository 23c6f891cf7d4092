package v1

import (
	ez_uuid "github.com/duecal/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIDate struct {
	Date string `uri:"date" binding:"required" example:"2024-01-31"` // The day in YYYY-MM-DD format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// defaultLimit is the number of resources returned by list endpoints
// when no limit is requested.
const defaultLimit = 50
