package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goalbook/backend/internal/models"
)

const (
	historyDefaultLimit = 5
	historyMaxLimit     = 100
)

// Row is one display entry of the transaction history: raw ledger data with
// the referenced account and goal IDs resolved to names. Names of entities
// deleted since the entry was written resolve to the empty string.
type Row struct {
	ID        uuid.UUID       `json:"id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`

	AccountID   *uuid.UUID `json:"accountId,omitempty"`
	AccountName string     `json:"accountName"`
	GoalID      *uuid.UUID `json:"goalId,omitempty"`
	GoalName    string     `json:"goalName"`

	FromGoalID      *uuid.UUID `json:"fromGoalId,omitempty"`
	ToGoalID        *uuid.UUID `json:"toGoalId,omitempty"`
	FromGoalName    string     `json:"fromGoalName,omitempty"`
	ToGoalName      string     `json:"toGoalName,omitempty"`
	FromAccountName string     `json:"fromAccountName,omitempty"`
	ToAccountName   string     `json:"toAccountName,omitempty"`

	DisplayAccount string `json:"displayAccount"`
	DisplayGoal    string `json:"displayGoal"`
}

// History returns the most recent ledger entries of the user as display
// rows. The limit is clamped to 1..100 and defaults to 5.
//
// When a deposit or withdrawal entry carries no account ID, the account is
// derived through the referenced goal. Goal-to-goal transfer rows render
// directional "A → B" labels for both the account and the goal dimension.
func (s *Service) History(userID uuid.UUID, limit int) ([]Row, error) {
	if limit < 1 {
		limit = historyDefaultLimit
	}
	if limit > historyMaxLimit {
		limit = historyMaxLimit
	}

	var accounts []models.Account
	if err := s.db.Where(&models.Account{UserID: userID}).Find(&accounts).Error; err != nil {
		return nil, err
	}

	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}

	var goals []models.Goal
	if err := s.db.Where(&models.Goal{UserID: userID}).Find(&goals).Error; err != nil {
		return nil, err
	}

	goalsByID := make(map[uuid.UUID]models.Goal, len(goals))
	for _, g := range goals {
		goalsByID[g.ID] = g
	}

	var transactions []models.Transaction
	err := s.db.
		Where(&models.Transaction{UserID: userID}).
		Order("datetime(transactions.date) DESC, datetime(transactions.created_at) DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(transactions))
	for _, t := range transactions {
		row := Row{
			ID:        t.ID,
			Type:      strings.ToLower(string(t.Type)),
			Amount:    t.SignedAmount(),
			CreatedAt: t.Date,
		}

		if t.Type == models.TransactionTypeTransfer && t.FromGoalID != nil {
			row.FromGoalID = t.FromGoalID
			row.ToGoalID = t.ToGoalID

			var fromAccount, toAccount string
			if g, ok := goalsByID[*t.FromGoalID]; ok {
				row.FromGoalName = g.Name
				if g.AccountID != nil {
					fromAccount = accountNames[*g.AccountID]
				}
			}
			if t.ToGoalID != nil {
				if g, ok := goalsByID[*t.ToGoalID]; ok {
					row.ToGoalName = g.Name
					if g.AccountID != nil {
						toAccount = accountNames[*g.AccountID]
					}
				}
			}

			row.FromAccountName = fromAccount
			row.ToAccountName = toAccount
			row.DisplayAccount = strings.TrimSpace(fmt.Sprintf("%s → %s", fromAccount, toAccount))
			row.DisplayGoal = strings.TrimSpace(fmt.Sprintf("%s → %s", row.FromGoalName, row.ToGoalName))
		} else {
			accountID := t.AccountID
			if accountID == nil && t.GoalID != nil {
				if g, ok := goalsByID[*t.GoalID]; ok && g.AccountID != nil {
					accountID = g.AccountID
				}
			}

			row.AccountID = accountID
			if accountID != nil {
				row.AccountName = accountNames[*accountID]
			}

			row.GoalID = t.GoalID
			if t.GoalID != nil {
				if g, ok := goalsByID[*t.GoalID]; ok {
					row.GoalName = g.Name
				}
			}

			row.DisplayAccount = row.AccountName
			row.DisplayGoal = row.GoalName
		}

		rows = append(rows, row)
	}

	return rows, nil
}
