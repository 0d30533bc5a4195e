// Package ledger implements the allocation and transfer core: the operations
// that move money between accounts and goals while keeping the sum of an
// account's goal allocations within its balance.
package ledger

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"

	"github.com/goalbook/backend/internal/models"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "goalbook_ledger_operations_total",
	Help: "Ledger operations by type and outcome",
}, []string{"operation", "outcome"})

// Service executes ledger operations against an injected database handle.
//
// Every mutating operation runs its read-validate-write sequence inside a
// single database transaction, so a failed feasibility check never leaves
// records half-written.
type Service struct {
	db *gorm.DB
}

// NewService returns a Service using the given database handle.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func count(operation string, err error) error {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}

	operationsTotal.WithLabelValues(operation, outcome).Inc()
	return err
}

// accountForUser loads an account owned by the user.
func accountForUser(tx *gorm.DB, id, userID uuid.UUID) (models.Account, error) {
	var account models.Account
	err := tx.First(&account, "id = ? AND user_id = ?", id, userID).Error
	return account, err
}

// goalForUser loads a goal owned by the user.
func goalForUser(tx *gorm.DB, id, userID uuid.UUID) (models.Goal, error) {
	var goal models.Goal
	err := tx.First(&goal, "id = ? AND user_id = ?", id, userID).Error
	return goal, err
}

// goalInAccount verifies that the goal is funded by the given account.
func goalInAccount(goal models.Goal, accountID uuid.UUID) error {
	if goal.AccountID == nil || *goal.AccountID != accountID {
		return ErrGoalNotInAccount
	}

	return nil
}
