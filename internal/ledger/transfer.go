package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

// TransferGoals moves allocated funds from one goal to another. When the
// goals are funded by different accounts, the balance moves with the
// allocation; the destination account must have enough unallocated capacity
// to absorb the new allocation.
//
// All feasibility checks happen before the first write: a rejected transfer
// leaves all four records untouched.
func (s *Service) TransferGoals(userID, fromGoalID, toGoalID uuid.UUID, amount decimal.Decimal) (models.Transaction, error) {
	if !amount.IsPositive() {
		return models.Transaction{}, count("transfer_goals", ErrAmountNotPositive)
	}

	if fromGoalID == toGoalID {
		return models.Transaction{}, count("transfer_goals", ErrSameGoal)
	}

	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		from, err := goalForUser(tx, fromGoalID, userID)
		if err != nil {
			return err
		}

		to, err := goalForUser(tx, toGoalID, userID)
		if err != nil {
			return err
		}

		if from.AllocatedAmount.LessThan(amount) {
			return ErrInsufficientAllocation
		}

		// The balance only moves when both goals are funded by accounts
		// and the accounts differ. Within one account the total
		// allocation cannot grow, so no capacity check is needed.
		crossAccount := from.AccountID != nil && to.AccountID != nil && *from.AccountID != *to.AccountID

		var fromAccount, toAccount models.Account
		if crossAccount {
			fromAccount, err = accountForUser(tx, *from.AccountID, userID)
			if err != nil {
				return err
			}

			toAccount, err = accountForUser(tx, *to.AccountID, userID)
			if err != nil {
				return err
			}

			if fromAccount.Balance.LessThan(amount) {
				return ErrInsufficientFunds
			}

			free, err := unallocated(tx, toAccount)
			if err != nil {
				return err
			}

			if exceedsCapacity(amount, free) {
				return ErrInsufficientUnallocated
			}
		}

		from.AllocatedAmount = from.AllocatedAmount.Sub(amount)
		to.AllocatedAmount = to.AllocatedAmount.Add(amount)

		if err := tx.Save(&from).Error; err != nil {
			return err
		}
		if err := tx.Save(&to).Error; err != nil {
			return err
		}

		var accountID *uuid.UUID
		if crossAccount {
			fromAccount.Balance = fromAccount.Balance.Sub(amount)
			toAccount.Balance = toAccount.Balance.Add(amount)

			if err := tx.Save(&fromAccount).Error; err != nil {
				return err
			}
			if err := tx.Save(&toAccount).Error; err != nil {
				return err
			}

			accountID = &fromAccount.ID
		}

		transaction = models.Transaction{
			UserID:     userID,
			Type:       models.TransactionTypeTransfer,
			Amount:     amount,
			AccountID:  accountID,
			FromGoalID: &from.ID,
			ToGoalID:   &to.ID,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, count("transfer_goals", err)
}

// TransferAccountsParams are the inputs for TransferAccounts.
type TransferAccountsParams struct {
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	FromGoalID    *uuid.UUID
	ToGoalID      *uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
}

// TransferAccounts moves balance between two accounts. When goal IDs are
// given, the matching allocations move along: the source goal's allocation
// must cover the amount, and the destination goal's allocation grows
// together with the destination balance, which keeps the invariant intact
// on both sides.
//
// Two ledger entries are written, one per leg, so per-account history views
// show both sides of the transfer.
func (s *Service) TransferAccounts(userID uuid.UUID, p TransferAccountsParams) ([]models.Transaction, error) {
	if !p.Amount.IsPositive() {
		return nil, count("transfer_accounts", ErrAmountNotPositive)
	}

	if p.FromAccountID == p.ToAccountID {
		return nil, count("transfer_accounts", ErrSameAccount)
	}

	var legs []models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		from, err := accountForUser(tx, p.FromAccountID, userID)
		if err != nil {
			return err
		}

		to, err := accountForUser(tx, p.ToAccountID, userID)
		if err != nil {
			return err
		}

		if from.Balance.LessThan(p.Amount) {
			return ErrInsufficientFunds
		}

		var fromGoal, toGoal models.Goal
		if p.FromGoalID != nil {
			fromGoal, err = goalForUser(tx, *p.FromGoalID, userID)
			if err != nil {
				return err
			}

			if err := goalInAccount(fromGoal, from.ID); err != nil {
				return err
			}

			if fromGoal.AllocatedAmount.LessThan(p.Amount) {
				return ErrInsufficientAllocation
			}
		}

		if p.ToGoalID != nil {
			toGoal, err = goalForUser(tx, *p.ToGoalID, userID)
			if err != nil {
				return err
			}

			if err := goalInAccount(toGoal, to.ID); err != nil {
				return err
			}
		}

		from.Balance = from.Balance.Sub(p.Amount)
		to.Balance = to.Balance.Add(p.Amount)

		if err := tx.Save(&from).Error; err != nil {
			return err
		}
		if err := tx.Save(&to).Error; err != nil {
			return err
		}

		if p.FromGoalID != nil {
			fromGoal.AllocatedAmount = fromGoal.AllocatedAmount.Sub(p.Amount)
			if err := tx.Save(&fromGoal).Error; err != nil {
				return err
			}
		}

		if p.ToGoalID != nil {
			toGoal.AllocatedAmount = toGoal.AllocatedAmount.Add(p.Amount)
			if err := tx.Save(&toGoal).Error; err != nil {
				return err
			}
		}

		legs = []models.Transaction{
			{
				UserID:    userID,
				Type:      models.TransactionTypeTransfer,
				Amount:    p.Amount,
				Direction: models.DirectionOutflow,
				Date:      p.Date,
				AccountID: &from.ID,
				GoalID:    p.FromGoalID,
			},
			{
				UserID:    userID,
				Type:      models.TransactionTypeTransfer,
				Amount:    p.Amount,
				Direction: models.DirectionInflow,
				Date:      p.Date,
				AccountID: &to.ID,
				GoalID:    p.ToGoalID,
			},
		}

		for i := range legs {
			if err := tx.Create(&legs[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, count("transfer_accounts", err)
	}

	return legs, count("transfer_accounts", nil)
}
