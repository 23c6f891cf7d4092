package v1

import (
	"errors"
	"net/http"

	"github.com/duecal/backend/pkg/calendar"
	"github.com/duecal/backend/pkg/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// calendarStatus returns the status for an error of the calendar service.
//
// Invalid filters are the fault of the client, everything else means that
// the calendar could not be loaded.
func calendarStatus(err error) int {
	if errors.Is(err, calendar.ErrFilterTypeInvalid) || errors.Is(err, calendar.ErrFilterStatusInvalid) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Calendar errors
var (
	errDateInvalid = errors.New("the date must be in YYYY-MM-DD format or an RFC3339 timestamp")
)
