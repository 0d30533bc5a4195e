package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/models"
)

// RegisterHealthzRoutes registers the routes for the healthz endpoint.
func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetHealthz)
}

// GetHealthz returns data about the application health
//
//	@Summary		Get health
//	@Description	Returns HTTP 204 if the database can be reached
//	@Tags			General
//	@Success		204
//	@Failure		500	{object}	Response
//	@Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	sqlDB, err := co.DB.DB()
	if err != nil {
		e(c, models.ErrGeneral)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		e(c, models.ErrGeneral)
		return
	}

	c.Status(http.StatusNoContent)
}
