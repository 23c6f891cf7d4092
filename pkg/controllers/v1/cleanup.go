package v1

import (
	"net/http"

	"github.com/duecal/backend/pkg/confirm"
	"github.com/duecal/backend/pkg/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// @Summary		Delete everything
// @Description	Permanently deletes all resources
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources"
// @Router			/v1 [delete]
func (co Controller) Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	confirmer := co.Confirmer
	if confirmer == nil {
		confirmer = confirm.Deny
	}

	ok, err := confirmer.Confirm(c.Request.Context(), confirm.Request{
		Action:       "cleanup",
		Confirmation: params.Confirm,
	})
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("Cleanup")
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	if !ok {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.DeleteAll(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}
	co.invalidate()

	c.JSON(http.StatusNoContent, nil)
}
