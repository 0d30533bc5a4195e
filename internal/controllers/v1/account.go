package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/ledger"
	"github.com/goalbook/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetAccounts)
	r.POST("", co.CreateAccount)

	r.OPTIONS("/allocations", httputil.OptionsGet)
	r.GET("/allocations", co.GetAllocations)

	r.OPTIONS("/transfer", httputil.OptionsPost)
	r.POST("/transfer", co.TransferAccounts)
}

type AccountCreateRequest struct {
	Name string             `json:"name" binding:"required" example:"Checking"`
	Type models.AccountType `json:"type" example:"savings"`
}

type AccountTransferRequest struct {
	FromAccountID uuid.UUID       `json:"fromAccountId" binding:"required"`
	ToAccountID   uuid.UUID       `json:"toAccountId" binding:"required"`
	FromGoalID    *uuid.UUID      `json:"fromGoalId"`
	ToGoalID      *uuid.UUID      `json:"toGoalId"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          time.Time       `json:"date"`
}

// CreateAccount creates a new account
//
//	@Summary		Create account
//	@Description	Creates a new account for the authenticated user
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Account}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Param			account	body	AccountCreateRequest	true	"Account"
//	@Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var request AccountCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	account := models.Account{
		UserID: currentUser(c).ID,
		Name:   request.Name,
		Type:   request.Type,
	}
	if err := co.DB.Create(&account).Error; err != nil {
		e(c, err)
		return
	}

	created(c, account)
}

// GetAccounts returns all accounts of the user
//
//	@Summary		List accounts
//	@Description	Returns all accounts of the authenticated user
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	Response{data=[]models.Account}
//	@Failure		401	{object}	Response
//	@Router			/v1/accounts [get]
func (co Controller) GetAccounts(c *gin.Context) {
	var accounts []models.Account
	err := co.DB.Where(&models.Account{UserID: currentUser(c).ID}).Order("name ASC").Find(&accounts).Error
	if err != nil {
		e(c, err)
		return
	}

	ok(c, accounts)
}

// GetAllocations returns the allocation overview for all accounts
//
//	@Summary		Account allocations
//	@Description	Returns every account with its goal allocations, unallocated funds and percentage shares
//	@Tags			Accounts
//	@Produce		json
//	@Success		200	{object}	Response{data=[]ledger.AccountOverview}
//	@Failure		401	{object}	Response
//	@Router			/v1/accounts/allocations [get]
func (co Controller) GetAllocations(c *gin.Context) {
	overview, err := co.Ledger.Overview(currentUser(c).ID)
	if err != nil {
		e(c, err)
		return
	}

	ok(c, overview)
}

// TransferAccounts moves funds between two accounts
//
//	@Summary		Transfer between accounts
//	@Description	Moves the amount from one account to another, optionally moving goal allocations along
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=[]models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			transfer	body	AccountTransferRequest	true	"Transfer"
//	@Router			/v1/accounts/transfer [post]
func (co Controller) TransferAccounts(c *gin.Context) {
	var request AccountTransferRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	transactions, err := co.Ledger.TransferAccounts(currentUser(c).ID, ledger.TransferAccountsParams{
		FromAccountID: request.FromAccountID,
		ToAccountID:   request.ToAccountID,
		FromGoalID:    request.FromGoalID,
		ToGoalID:      request.ToGoalID,
		Amount:        request.Amount,
		Date:          request.Date,
	})
	if err != nil {
		e(c, err)
		return
	}

	created(c, transactions)
}
