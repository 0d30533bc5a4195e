package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

// highDebtThreshold is the debt at which the higher interest factor applies.
var (
	highDebtThreshold  = decimal.NewFromInt(1000)
	highInterestFactor = decimal.NewFromFloat(1.2)
	two                = decimal.NewFromInt(2)
)

// Financing grants the user a loan: the amount is added to the user-level
// balance and recorded as debt. A user can hold at most one loan, and the
// loan must not exceed twice the current balance.
func (s *Service) Financing(userID uuid.UUID, amount decimal.Decimal) (models.Transaction, error) {
	if !amount.IsPositive() {
		return models.Transaction{}, count("financing", ErrAmountNotPositive)
	}

	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if user.Debt.IsPositive() {
			return ErrOutstandingDebt
		}

		if amount.GreaterThan(user.Balance.Mul(two)) {
			return ErrFinancingLimit
		}

		user.Balance = user.Balance.Add(amount)
		user.Debt = amount
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		transaction = models.Transaction{
			UserID:    userID,
			Type:      models.TransactionTypeFinancing,
			Amount:    amount,
			Direction: models.DirectionInflow,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, count("financing", err)
}

// Repay settles the user's debt in one step at debt times the interest
// factor. Debts at or above the high-debt threshold are charged the higher
// factor. After repayment the factor resets to the default.
func (s *Service) Repay(userID uuid.UUID) (models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if !user.Debt.IsPositive() {
			return ErrNoDebt
		}

		if user.Debt.GreaterThanOrEqual(highDebtThreshold) {
			user.InterestFactor = highInterestFactor
		}

		due := user.Debt.Mul(user.InterestFactor)
		if user.Balance.LessThan(due) {
			return ErrInsufficientFunds
		}

		user.Balance = user.Balance.Sub(due)
		user.Debt = decimal.Zero
		user.InterestFactor = models.DefaultInterestFactor
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		transaction = models.Transaction{
			UserID:    userID,
			Type:      models.TransactionTypeRepay,
			Amount:    due,
			Direction: models.DirectionOutflow,
		}
		return tx.Create(&transaction).Error
	})

	return transaction, count("repay", err)
}
