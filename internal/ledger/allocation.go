package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

// epsilon absorbs floating-point rounding on amounts that arrive as JSON
// numbers. Capacity checks accept a requested amount that exceeds the
// available sum by no more than this.
var epsilon = decimal.New(1, -9)

// allocatedSum returns the sum of all goal allocations under an account.
func allocatedSum(tx *gorm.DB, accountID, userID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := tx.Model(&models.Goal{}).
		Where("account_id = ? AND user_id = ?", accountID, userID).
		Select("SUM(allocated_amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}

// unallocated computes the portion of the account balance not earmarked for
// any goal: max(0, balance - sum of allocations).
func unallocated(tx *gorm.DB, account models.Account) (decimal.Decimal, error) {
	sum, err := allocatedSum(tx, account.ID, account.UserID)
	if err != nil {
		return decimal.Zero, err
	}

	free := account.Balance.Sub(sum)
	if free.IsNegative() {
		return decimal.Zero, nil
	}

	return free, nil
}

// Unallocated is the read-side of the allocation invariant checker: the
// funds of the account that are available for new allocations.
func (s *Service) Unallocated(accountID, userID uuid.UUID) (decimal.Decimal, error) {
	account, err := accountForUser(s.db, accountID, userID)
	if err != nil {
		return decimal.Zero, err
	}

	return unallocated(s.db, account)
}

// exceedsCapacity reports whether the requested amount does not fit into
// the available sum, allowing for the rounding epsilon.
func exceedsCapacity(amount, available decimal.Decimal) bool {
	return amount.GreaterThan(available.Add(epsilon))
}
