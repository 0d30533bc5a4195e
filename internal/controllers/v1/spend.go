package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/ledger"
	"github.com/goalbook/backend/internal/models"
)

// RegisterSpendRoutes registers the routes for spend tracking.
func (co Controller) RegisterSpendRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetSpends)
	r.POST("", co.CreateSpend)

	r.OPTIONS("/progress", httputil.OptionsGet)
	r.GET("/progress", co.GetSpendingProgress)
}

type SpendCreateRequest struct {
	Category string          `json:"category" binding:"required" example:"groceries"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     time.Time       `json:"date"`
}

// CreateSpend records a spend
//
//	@Summary		Record spend
//	@Description	Records a categorized spend for tracking against spending goals
//	@Tags			Spends
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Spend}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Param			spend	body	SpendCreateRequest	true	"Spend"
//	@Router			/v1/spends [post]
func (co Controller) CreateSpend(c *gin.Context) {
	var request SpendCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	if !request.Amount.IsPositive() {
		e(c, ledger.ErrAmountNotPositive)
		return
	}

	spend := models.Spend{
		UserID:   currentUser(c).ID,
		Category: request.Category,
		Amount:   request.Amount,
		Date:     request.Date,
	}
	if err := co.DB.Create(&spend).Error; err != nil {
		e(c, err)
		return
	}

	created(c, spend)
}

// GetSpends returns all spends of the user
//
//	@Summary		List spends
//	@Description	Returns all recorded spends of the authenticated user
//	@Tags			Spends
//	@Produce		json
//	@Success		200	{object}	Response{data=[]models.Spend}
//	@Failure		401	{object}	Response
//	@Router			/v1/spends [get]
func (co Controller) GetSpends(c *gin.Context) {
	var spends []models.Spend
	err := co.DB.Where(&models.Spend{UserID: currentUser(c).ID}).Order("date DESC").Find(&spends).Error
	if err != nil {
		e(c, err)
		return
	}

	ok(c, spends)
}

// GetSpendingProgress returns the progress of all spending goals
//
//	@Summary		Spending progress
//	@Description	Returns, for every spending goal, the spends matching its category pattern summed against its target
//	@Tags			Spends
//	@Produce		json
//	@Success		200	{object}	Response{data=[]ledger.SpendingProgress}
//	@Failure		401	{object}	Response
//	@Router			/v1/spends/progress [get]
func (co Controller) GetSpendingProgress(c *gin.Context) {
	progress, err := co.Ledger.Progress(currentUser(c).ID)
	if err != nil {
		e(c, err)
		return
	}

	ok(c, progress)
}
