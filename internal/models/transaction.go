package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType describes the operation that produced a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit   TransactionType = "Deposit"
	TransactionTypeWithdraw  TransactionType = "Withdraw"
	TransactionTypeTransfer  TransactionType = "Transfer"
	TransactionTypeFinancing TransactionType = "Financing"
	TransactionTypeRepay     TransactionType = "Repay"
)

// TransactionDirection marks the leg of an account-to-account transfer.
// Amounts are always stored positive; the direction carries the sign.
type TransactionDirection string

const (
	DirectionInflow  TransactionDirection = "inflow"
	DirectionOutflow TransactionDirection = "outflow"
)

// Transaction is one entry of the append-only ledger. Entries are never
// updated or deleted; they exist purely as an audit trail and as the
// source for history views.
//
// The referenced account and goal IDs are not foreign keys. History rows
// for entities deleted since the entry was written resolve their names to
// the empty string.
type Transaction struct {
	DefaultModel
	User       User                 `json:"-"`
	UserID     uuid.UUID            `json:"userId" gorm:"index"`
	Type       TransactionType      `json:"type" gorm:"index" example:"Deposit"`
	Amount     decimal.Decimal      `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50"`
	Direction  TransactionDirection `json:"direction" example:"inflow"`
	Date       time.Time            `json:"date" example:"2026-08-01T00:00:00Z"`
	AccountID  *uuid.UUID           `json:"accountId"`
	GoalID     *uuid.UUID           `json:"goalId"`
	FromGoalID *uuid.UUID           `json:"fromGoalId"`
	ToGoalID   *uuid.UUID           `json:"toGoalId"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// SignedAmount renders the amount the way account history views expect it:
// negative for the outflow leg of a transfer, positive otherwise.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionOutflow {
		return t.Amount.Neg()
	}

	return t.Amount
}
