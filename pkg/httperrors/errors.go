// Package httperrors writes error responses for requests that never reach a
// resource controller, e.g. unknown routes or failed health checks.
package httperrors

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Error     string `json:"error" example:"There is no endpoint for the path you called"`       // The error
	RequestID string `json:"requestId,omitempty" example:"3b8f2a7e-4f55-4c1a-9d0b-1c2d3e4f5a6b"` // ID of the request, also found in the logs
}

// message formats msgAndArgs. A single value is printed as is, more values
// are a format string followed by its arguments.
func message(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}

	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...)
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

// New aborts the request with an error response. Server errors are logged
// with the request ID.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	e := HTTPError{
		Error:     message(msgAndArgs...),
		RequestID: requestid.Get(c),
	}

	if status >= http.StatusInternalServerError {
		log.Error().Str("request-id", e.RequestID).Int("status", status).Str("path", c.Request.URL.Path).Msg(e.Error)
	}

	c.AbortWithStatusJSON(status, e)
}
