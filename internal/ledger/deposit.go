package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

// DepositParams are the inputs for Deposit and Withdraw.
type DepositParams struct {
	AccountID uuid.UUID
	GoalID    *uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
}

// Deposit increases the account balance by the amount. When a goal is given,
// the goal must be funded by the account and its allocation grows by the
// same amount, so the deposit can never violate the allocation invariant.
func (s *Service) Deposit(userID uuid.UUID, p DepositParams) (models.Transaction, error) {
	if !p.Amount.IsPositive() {
		return models.Transaction{}, count("deposit", ErrAmountNotPositive)
	}

	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := accountForUser(tx, p.AccountID, userID)
		if err != nil {
			return err
		}

		var goal models.Goal
		if p.GoalID != nil {
			goal, err = goalForUser(tx, *p.GoalID, userID)
			if err != nil {
				return err
			}

			if err := goalInAccount(goal, account.ID); err != nil {
				return err
			}
		}

		account.Balance = account.Balance.Add(p.Amount)
		if err := tx.Save(&account).Error; err != nil {
			return err
		}

		if p.GoalID != nil {
			goal.AllocatedAmount = goal.AllocatedAmount.Add(p.Amount)
			if err := tx.Save(&goal).Error; err != nil {
				return err
			}
		}

		transaction = models.Transaction{
			UserID:    userID,
			Type:      models.TransactionTypeDeposit,
			Amount:    p.Amount,
			Date:      p.Date,
			AccountID: &account.ID,
			GoalID:    p.GoalID,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, count("deposit", err)
}

// Withdraw is the inverse of Deposit. With a goal, the goal's allocation
// must cover the amount and shrinks together with the account balance.
// Without one, only the balance shrinks.
func (s *Service) Withdraw(userID uuid.UUID, p DepositParams) (models.Transaction, error) {
	if !p.Amount.IsPositive() {
		return models.Transaction{}, count("withdraw", ErrAmountNotPositive)
	}

	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		account, err := accountForUser(tx, p.AccountID, userID)
		if err != nil {
			return err
		}

		var goal models.Goal
		if p.GoalID != nil {
			goal, err = goalForUser(tx, *p.GoalID, userID)
			if err != nil {
				return err
			}

			if err := goalInAccount(goal, account.ID); err != nil {
				return err
			}

			if goal.AllocatedAmount.LessThan(p.Amount) {
				return ErrInsufficientAllocation
			}
		}

		if account.Balance.LessThan(p.Amount) {
			return ErrInsufficientFunds
		}

		account.Balance = account.Balance.Sub(p.Amount)
		if err := tx.Save(&account).Error; err != nil {
			return err
		}

		if p.GoalID != nil {
			goal.AllocatedAmount = goal.AllocatedAmount.Sub(p.Amount)
			if err := tx.Save(&goal).Error; err != nil {
				return err
			}
		}

		transaction = models.Transaction{
			UserID:    userID,
			Type:      models.TransactionTypeWithdraw,
			Amount:    p.Amount,
			Date:      p.Date,
			AccountID: &account.ID,
			GoalID:    p.GoalID,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, count("withdraw", err)
}
