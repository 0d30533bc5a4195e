package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/ledger"
)

// RegisterDepositRoutes registers the routes for deposits.
func (co Controller) RegisterDepositRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.CreateDeposit)
}

// RegisterWithdrawalRoutes registers the routes for withdrawals.
func (co Controller) RegisterWithdrawalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.CreateWithdrawal)
}

type MovementRequest struct {
	AccountID uuid.UUID       `json:"accountId" binding:"required"`
	GoalID    *uuid.UUID      `json:"goalId"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      time.Time       `json:"date"`
}

func (r MovementRequest) params() ledger.DepositParams {
	return ledger.DepositParams{
		AccountID: r.AccountID,
		GoalID:    r.GoalID,
		Amount:    r.Amount,
		Date:      r.Date,
	}
}

// CreateDeposit adds funds to an account
//
//	@Summary		Deposit
//	@Description	Adds the amount to the account balance. With a goal, the goal's allocation grows by the same amount
//	@Tags			Movements
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			deposit	body	MovementRequest	true	"Deposit"
//	@Router			/v1/deposits [post]
func (co Controller) CreateDeposit(c *gin.Context) {
	var request MovementRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	transaction, err := co.Ledger.Deposit(currentUser(c).ID, request.params())
	if err != nil {
		e(c, err)
		return
	}

	created(c, transaction)
}

// CreateWithdrawal removes funds from an account
//
//	@Summary		Withdraw
//	@Description	Removes the amount from the account balance. With a goal, the goal's allocation shrinks by the same amount
//	@Tags			Movements
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			withdrawal	body	MovementRequest	true	"Withdrawal"
//	@Router			/v1/withdrawals [post]
func (co Controller) CreateWithdrawal(c *gin.Context) {
	var request MovementRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	transaction, err := co.Ledger.Withdraw(currentUser(c).ID, request.params())
	if err != nil {
		e(c, err)
		return
	}

	created(c, transaction)
}
