// Package v1 implements the v1 HTTP API.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/config"
	"github.com/goalbook/backend/internal/ledger"
	"github.com/goalbook/backend/internal/models"
)

// Controller holds the database connection and dependencies for the handlers.
type Controller struct {
	DB     *gorm.DB
	Ledger *ledger.Service
	Config *config.Config
}

func NewController(db *gorm.DB, cfg *config.Config) Controller {
	return Controller{
		DB:     db,
		Ledger: ledger.NewService(db),
		Config: cfg,
	}
}

// Response is the envelope for all v1 API responses.
type Response struct {
	Status  bool   `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Status: true, Data: data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Response{Status: true, Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: false, Message: message})
}

// e translates an error into the matching HTTP response.
func e(c *gin.Context, err error) {
	fail(c, status(err), err.Error())
}

// status returns the appropriate HTTP status code for the error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, ledger.ErrGoalNotInAccount):
		return http.StatusNotFound

	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized

	default:
		return http.StatusBadRequest
	}
}
