package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/models"
	"github.com/goalbook/backend/internal/token"
)

// RegisterAuthRoutes registers the routes for registration, login and the
// authenticated account endpoints.
func (co Controller) RegisterAuthRoutes(open, authed *gin.RouterGroup) {
	open.OPTIONS("/users", httputil.OptionsPost)
	open.POST("/users", co.CreateUser)
	open.OPTIONS("/login", httputil.OptionsPost)
	open.POST("/login", co.Login)

	authed.OPTIONS("/logout", httputil.OptionsPost)
	authed.POST("/logout", co.Logout)
	authed.OPTIONS("/whoami", httputil.OptionsGet)
	authed.GET("/whoami", co.Whoami)
	authed.OPTIONS("/balance", httputil.OptionsGet)
	authed.GET("/balance", co.GetBalance)
}

type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       string `json:"id" example:"d430d7c3-d14c-4312-9b51-c606d0fcfb67"`
	Username string `json:"username" example:"morre"`
}

type BalanceResponse struct {
	Balance        decimal.Decimal `json:"balance" example:"271.95"`
	Debt           decimal.Decimal `json:"debt" example:"0"`
	InterestFactor decimal.Decimal `json:"interestFactor" example:"1.1"`
}

// CreateUser registers a new user and logs them in
//
//	@Summary		Register user
//	@Description	Creates a new user and starts a session for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=UserResponse}
//	@Failure		400	{object}	Response
//	@Failure		500	{object}	Response
//	@Param			credentials	body	CredentialsRequest	true	"Credentials"
//	@Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var request CredentialsRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	user := models.User{Username: request.Username}
	if err := user.SetPassword(request.Password, co.Config.Auth.BcryptCost); err != nil {
		e(c, models.ErrGeneral)
		return
	}

	if err := co.DB.Create(&user).Error; err != nil {
		e(c, err)
		return
	}

	if err := co.startSession(c, user); err != nil {
		e(c, err)
		return
	}

	created(c, UserResponse{ID: user.ID.String(), Username: user.Username})
}

// Login verifies credentials and starts a session
//
//	@Summary		Login
//	@Description	Verifies the credentials and sets the session cookie
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	Response{data=UserResponse}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Param			credentials	body	CredentialsRequest	true	"Credentials"
//	@Router			/v1/login [post]
func (co Controller) Login(c *gin.Context) {
	var request CredentialsRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	var user models.User
	err := co.DB.First(&user, "username = ?", request.Username).Error
	if err != nil || !user.CheckPassword(request.Password) {
		// Do not leak whether the username exists
		e(c, models.ErrInvalidCredentials)
		return
	}

	if err := co.startSession(c, user); err != nil {
		e(c, err)
		return
	}

	ok(c, UserResponse{ID: user.ID.String(), Username: user.Username})
}

// Logout revokes the current session
//
//	@Summary		Logout
//	@Description	Revokes the session and clears the session cookie
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Response
//	@Failure		401	{object}	Response
//	@Router			/v1/logout [post]
func (co Controller) Logout(c *gin.Context) {
	session := currentSession(c)
	session.Revoked = true
	if err := co.DB.Save(&session).Error; err != nil {
		e(c, err)
		return
	}

	c.SetCookie(AuthCookie, "", -1, "/", "", co.Config.Auth.SecureCookies, true)
	ok(c, nil)
}

// Whoami returns the authenticated user
//
//	@Summary		Current user
//	@Description	Returns the user owning the session
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Response{data=UserResponse}
//	@Failure		401	{object}	Response
//	@Router			/v1/whoami [get]
func (co Controller) Whoami(c *gin.Context) {
	user := currentUser(c)
	ok(c, UserResponse{ID: user.ID.String(), Username: user.Username})
}

// GetBalance returns the user-level balance and debt
//
//	@Summary		Balance
//	@Description	Returns the user-level balance, open debt and interest factor
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	Response{data=BalanceResponse}
//	@Failure		401	{object}	Response
//	@Router			/v1/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	user := currentUser(c)
	ok(c, BalanceResponse{
		Balance:        user.Balance,
		Debt:           user.Debt,
		InterestFactor: user.InterestFactor,
	})
}

// startSession creates a session record and sets the auth cookie.
func (co Controller) startSession(c *gin.Context, user models.User) error {
	ttl := time.Duration(co.Config.Auth.SessionHours) * time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(ttl).UTC(),
	}
	if err := co.DB.Create(&session).Error; err != nil {
		return err
	}

	tokenStr, err := token.Generate(co.Config.Auth.JWTSecret, user.ID, session.ID, ttl)
	if err != nil {
		log.Error().Err(err).Msg("startSession")
		return models.ErrGeneral
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookie, tokenStr, int(ttl.Seconds()), "/", "", co.Config.Auth.SecureCookies, true)
	return nil
}
