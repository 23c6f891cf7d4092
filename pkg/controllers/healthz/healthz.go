package healthz

import (
	"fmt"
	"net/http"

	"github.com/duecal/backend/pkg/httperrors"
	"github.com/duecal/backend/pkg/httputil"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object} httperrors.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		httperrors.New(c, http.StatusInternalServerError, "the database is not connected")
		return
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		unhealthy(c, err)
		return
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		unhealthy(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func unhealthy(c *gin.Context, err error) {
	httperrors.New(c, http.StatusInternalServerError, fmt.Sprintf("the database cannot be accessed: %s", err))
}
