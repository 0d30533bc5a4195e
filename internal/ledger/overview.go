package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/models"
)

// AccountOverview is the read-side of the invariant checker for one
// account: its balance split into per-goal allocations and the remaining
// unallocated funds.
type AccountOverview struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	Type           models.AccountType `json:"type"`
	Balance        decimal.Decimal    `json:"balance"`
	SumAllocated   decimal.Decimal    `json:"sumAllocated"`
	Unallocated    decimal.Decimal    `json:"unallocated"`
	UnallocatedPct float64            `json:"unallocatedPct"`
	Allocations    []GoalAllocation   `json:"allocations"`
}

// GoalAllocation is one goal's share of an account balance.
type GoalAllocation struct {
	GoalID   uuid.UUID       `json:"goalId"`
	GoalName string          `json:"goalName"`
	Amount   decimal.Decimal `json:"amount"`
	Pct      float64         `json:"pct"`
}

// Overview returns all accounts of the user with their allocation
// breakdown.
func (s *Service) Overview(userID uuid.UUID) ([]AccountOverview, error) {
	var accounts []models.Account
	if err := s.db.Where(&models.Account{UserID: userID}).Find(&accounts).Error; err != nil {
		return nil, err
	}

	var goals []models.Goal
	if err := s.db.Where(&models.Goal{UserID: userID}).Find(&goals).Error; err != nil {
		return nil, err
	}

	byAccount := make(map[uuid.UUID][]models.Goal)
	for _, g := range goals {
		if g.AccountID == nil {
			continue
		}
		byAccount[*g.AccountID] = append(byAccount[*g.AccountID], g)
	}

	out := make([]AccountOverview, 0, len(accounts))
	for _, account := range accounts {
		overview := AccountOverview{
			ID:          account.ID,
			Name:        account.Name,
			Type:        account.Type,
			Balance:     account.Balance,
			Allocations: make([]GoalAllocation, 0),
		}

		sum := decimal.Zero
		for _, g := range byAccount[account.ID] {
			sum = sum.Add(g.AllocatedAmount)

			allocation := GoalAllocation{
				GoalID:   g.ID,
				GoalName: g.Name,
				Amount:   g.AllocatedAmount,
			}
			if account.Balance.IsPositive() {
				allocation.Pct, _ = g.AllocatedAmount.Div(account.Balance).Float64()
			}

			overview.Allocations = append(overview.Allocations, allocation)
		}

		overview.SumAllocated = sum

		free := account.Balance.Sub(sum)
		if free.IsNegative() {
			free = decimal.Zero
		}
		overview.Unallocated = free
		if account.Balance.IsPositive() {
			overview.UnallocatedPct, _ = free.Div(account.Balance).Float64()
		}

		out = append(out, overview)
	}

	return out, nil
}
