package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
)

// RegisterFinancingRoutes registers the routes for loans and repayment.
func (co Controller) RegisterFinancingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/financing", httputil.OptionsPost)
	r.POST("/financing", co.CreateFinancing)

	r.OPTIONS("/repay", httputil.OptionsPost)
	r.POST("/repay", co.Repay)
}

type FinancingRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// CreateFinancing takes out a loan
//
//	@Summary		Financing
//	@Description	Grants a loan, adding the amount to the balance and recording it as debt. Only one loan may be open, and the amount must not exceed twice the balance
//	@Tags			Financing
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Param			financing	body	FinancingRequest	true	"Financing"
//	@Router			/v1/financing [post]
func (co Controller) CreateFinancing(c *gin.Context) {
	var request FinancingRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	transaction, err := co.Ledger.Financing(currentUser(c).ID, request.Amount)
	if err != nil {
		e(c, err)
		return
	}

	created(c, transaction)
}

// Repay settles the open debt
//
//	@Summary		Repay
//	@Description	Repays the open debt at the current interest factor and resets the factor
//	@Tags			Financing
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Router			/v1/repay [post]
func (co Controller) Repay(c *gin.Context) {
	transaction, err := co.Ledger.Repay(currentUser(c).ID)
	if err != nil {
		e(c, err)
		return
	}

	created(c, transaction)
}
