package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

// ContributeParams are the inputs for Contribute.
type ContributeParams struct {
	GoalID uuid.UUID
	Amount decimal.Decimal
	Note   string
	Date   time.Time
}

// Contribute earmarks unallocated funds of the parent account for a savings
// goal: the goal's allocation grows by the amount and a contribution record
// is appended. The account balance is untouched, so the amount must fit
// into the account's unallocated funds.
//
// Goals that predate accounts carry no parent account; for those the
// capacity check is skipped since there is no sibling set to oversubscribe.
func (s *Service) Contribute(userID uuid.UUID, p ContributeParams) (models.Goal, error) {
	if !p.Amount.IsPositive() {
		return models.Goal{}, count("contribute", ErrAmountNotPositive)
	}

	var goal models.Goal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		goal, err = goalForUser(tx, p.GoalID, userID)
		if err != nil {
			return err
		}

		if goal.Type != models.GoalTypeSavings {
			return ErrGoalNotSavings
		}

		if goal.AccountID != nil {
			account, err := accountForUser(tx, *goal.AccountID, userID)
			if err != nil {
				return err
			}

			free, err := unallocated(tx, account)
			if err != nil {
				return err
			}

			if exceedsCapacity(p.Amount, free) {
				return ErrInsufficientUnallocated
			}
		}

		goal.AllocatedAmount = goal.AllocatedAmount.Add(p.Amount)
		if err := tx.Save(&goal).Error; err != nil {
			return err
		}

		contribution := models.Contribution{
			GoalID: goal.ID,
			Amount: p.Amount,
			Note:   p.Note,
			Date:   p.Date,
		}
		if err := tx.Create(&contribution).Error; err != nil {
			return err
		}

		return tx.Preload("Contributions").First(&goal, goal.ID).Error
	})

	return goal, count("contribute", err)
}
