package ledger

import (
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/models"
)

// SpendingProgress is the state of a spending goal against its limit.
type SpendingProgress struct {
	GoalID   uuid.UUID           `json:"goalId"`
	GoalName string              `json:"goalName"`
	Category string              `json:"category"`
	Spent    decimal.Decimal     `json:"spent"`
	Limit    decimal.NullDecimal `json:"limit"`
	Over     bool                `json:"over"`
}

// spentFor sums the spends whose category matches the goal's category
// pattern. The pattern supports "*" wildcards, so a goal with category
// "Food*" tracks both "Food" and "Food/Takeout".
func spentFor(goal models.Goal, spends []models.Spend) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range spends {
		if glob.Glob(goal.Category, s.Category) {
			sum = sum.Add(s.Amount)
		}
	}

	return sum
}

// Progress computes the spent sum for every spending goal of the user.
func (s *Service) Progress(userID uuid.UUID) ([]SpendingProgress, error) {
	var goals []models.Goal
	err := s.db.Where(&models.Goal{UserID: userID, Type: models.GoalTypeSpending}).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	var spends []models.Spend
	if err := s.db.Where(&models.Spend{UserID: userID}).Find(&spends).Error; err != nil {
		return nil, err
	}

	out := make([]SpendingProgress, 0, len(goals))
	for _, goal := range goals {
		spent := spentFor(goal, spends)

		progress := SpendingProgress{
			GoalID:   goal.ID,
			GoalName: goal.Name,
			Category: goal.Category,
			Spent:    spent,
			Limit:    goal.TargetAmount,
		}
		if goal.TargetAmount.Valid {
			progress.Over = spent.GreaterThan(goal.TargetAmount.Decimal)
		}

		out = append(out, progress)
	}

	return out, nil
}
