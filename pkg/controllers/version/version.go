// Package version serves information about the running build.
package version

import (
	"net/http"
	"runtime"

	"github.com/duecal/backend/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Info describes the running instance.
type Info struct {
	Version  string `json:"version" example:"1.1.0"`          // The running version of the duecal backend
	Go       string `json:"go" example:"go1.25.5"`            // Go version the binary was built with
	Timezone string `json:"timezone" example:"Europe/Berlin"` // Time zone calendar days are computed in
}

type Response struct {
	Data Info `json:"data"` // Data object for the version endpoint
}

// Controller serves the version endpoint for a fixed Info.
type Controller struct {
	info Info
}

// New returns a controller for the build version and the calendar time zone.
// An empty timezone is reported as UTC.
func New(version, timezone string) Controller {
	if timezone == "" {
		timezone = "UTC"
	}

	return Controller{
		info: Info{
			Version:  version,
			Go:       runtime.Version(),
			Timezone: timezone,
		},
	}
}

func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", co.Get)
	r.OPTIONS("", co.Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func (co Controller) Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the API and the time zone of the calendar
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func (co Controller) Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: co.info})
}
