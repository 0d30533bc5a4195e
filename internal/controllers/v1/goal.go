package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/httputil"
	"github.com/goalbook/backend/internal/ledger"
	"github.com/goalbook/backend/internal/models"
	"github.com/goalbook/backend/internal/uuid"
)

// RegisterGoalRoutes registers the routes for goals.
func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetGoals)
	r.POST("", co.CreateGoal)

	r.OPTIONS("/contribute", httputil.OptionsPost)
	r.POST("/contribute", co.Contribute)

	r.OPTIONS("/transfer", httputil.OptionsPost)
	r.POST("/transfer", co.TransferGoals)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.DeleteGoal)
}

type GoalCreateRequest struct {
	Name         string              `json:"name" binding:"required" example:"Vacation"`
	AccountID    *google_uuid.UUID   `json:"accountId"`
	Type         models.GoalType     `json:"type" example:"savings"`
	TargetAmount decimal.NullDecimal `json:"targetAmount"`
	Category     string              `json:"category" example:"groceries*"`
	DueDate      *time.Time          `json:"dueDate"`
}

type ContributeRequest struct {
	GoalID google_uuid.UUID `json:"goalId" binding:"required"`
	Amount decimal.Decimal  `json:"amount" binding:"required"`
	Note   string           `json:"note"`
	Date   time.Time        `json:"date"`
}

type GoalTransferRequest struct {
	FromGoalID google_uuid.UUID `json:"fromGoalId" binding:"required"`
	ToGoalID   google_uuid.UUID `json:"toGoalId" binding:"required"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
}

// CreateGoal creates a new goal
//
//	@Summary		Create goal
//	@Description	Creates a new goal, optionally attached to an account
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Goal}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			goal	body	GoalCreateRequest	true	"Goal"
//	@Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var request GoalCreateRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	goal := models.Goal{
		UserID:       currentUser(c).ID,
		AccountID:    request.AccountID,
		Name:         request.Name,
		Type:         request.Type,
		TargetAmount: request.TargetAmount,
		Category:     request.Category,
		DueDate:      request.DueDate,
	}
	if err := co.DB.Create(&goal).Error; err != nil {
		e(c, err)
		return
	}

	created(c, goal)
}

// GetGoals returns all goals of the user
//
//	@Summary		List goals
//	@Description	Returns all goals of the authenticated user with their contributions
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	Response{data=[]models.Goal}
//	@Failure		401	{object}	Response
//	@Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	var goals []models.Goal
	err := co.DB.Where(&models.Goal{UserID: currentUser(c).ID}).
		Preload("Contributions").
		Order("name ASC").
		Find(&goals).Error
	if err != nil {
		e(c, err)
		return
	}

	ok(c, goals)
}

// Contribute earmarks unallocated funds for a savings goal
//
//	@Summary		Contribute to goal
//	@Description	Increases the goal's allocation from the parent account's unallocated funds
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Goal}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			contribution	body	ContributeRequest	true	"Contribution"
//	@Router			/v1/goals/contribute [post]
func (co Controller) Contribute(c *gin.Context) {
	var request ContributeRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	goal, err := co.Ledger.Contribute(currentUser(c).ID, ledger.ContributeParams{
		GoalID: request.GoalID,
		Amount: request.Amount,
		Note:   request.Note,
		Date:   request.Date,
	})
	if err != nil {
		e(c, err)
		return
	}

	created(c, goal)
}

// TransferGoals moves allocation between two goals
//
//	@Summary		Transfer between goals
//	@Description	Moves the amount from one goal's allocation to another's, moving account balance along for goals on different accounts
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	Response{data=models.Transaction}
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			transfer	body	GoalTransferRequest	true	"Transfer"
//	@Router			/v1/goals/transfer [post]
func (co Controller) TransferGoals(c *gin.Context) {
	var request GoalTransferRequest
	if err := httputil.BindData(c, &request); err != nil {
		e(c, err)
		return
	}

	transaction, err := co.Ledger.TransferGoals(currentUser(c).ID, request.FromGoalID, request.ToGoalID, request.Amount)
	if err != nil {
		e(c, err)
		return
	}

	created(c, transaction)
}

// DeleteGoal deletes a goal
//
//	@Summary		Delete goal
//	@Description	Deletes the goal. Its allocation returns to the account's unallocated funds
//	@Tags			Goals
//	@Produce		json
//	@Success		204
//	@Failure		400	{object}	Response
//	@Failure		401	{object}	Response
//	@Failure		404	{object}	Response
//	@Param			id	path	string	true	"ID formatted as string"
//	@Router			/v1/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri struct {
		ID uuid.UUID `uri:"id"`
	}
	if err := c.ShouldBindUri(&uri); err != nil {
		e(c, httputil.ErrInvalidBody)
		return
	}

	var goal models.Goal
	err := co.DB.First(&goal, "id = ? AND user_id = ?", uri.ID.UUID, currentUser(c).ID).Error
	if err != nil {
		e(c, err)
		return
	}

	if err := co.DB.Delete(&goal).Error; err != nil {
		e(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
