package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// GoalType distinguishes savings envelopes from spending-limit trackers.
type GoalType string

const (
	GoalTypeSavings  GoalType = "savings"
	GoalTypeSpending GoalType = "spending"
)

// Goal is an envelope under an account: a named share of the account's
// balance. For spending goals, Category links Spend records to the goal.
//
// AccountID is nullable because goals created before accounts were
// introduced do not reference one.
type Goal struct {
	DefaultModel
	User            User                `json:"-"`
	UserID          uuid.UUID           `json:"userId" gorm:"index" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Account         *Account            `json:"-"`
	AccountID       *uuid.UUID          `json:"accountId" gorm:"uniqueIndex:goal_name_account_id" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`
	Name            string              `json:"name" gorm:"uniqueIndex:goal_name_account_id" example:"Vacation"`
	Type            GoalType            `json:"type" gorm:"default:savings" example:"savings"`
	TargetAmount    decimal.NullDecimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"1500"`
	AllocatedAmount decimal.Decimal     `json:"allocatedAmount" gorm:"type:DECIMAL(20,8)" example:"620.50"`
	Category        string              `json:"category" example:"groceries*"`
	DueDate         *time.Time          `json:"dueDate" example:"2027-06-01T00:00:00Z"`
	Contributions   []Contribution      `json:"contributions,omitempty"`
}

// Contribution is one bookkeeping entry on a savings goal.
type Contribution struct {
	DefaultModel
	Goal   Goal            `json:"-"`
	GoalID uuid.UUID       `json:"goalId" gorm:"index"`
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50"`
	Date   time.Time       `json:"date" example:"2026-08-01T00:00:00Z"`
	Note   string          `json:"note" example:"monthly savings"`
}

var (
	ErrGoalNameNotUnique = errors.New("the goal name must be unique for the account")
	ErrGoalTypeInvalid   = errors.New("the goal type must be savings or spending")
)

// BeforeSave trims whitespace and defaults the goal type.
func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Category = strings.TrimSpace(g.Category)

	if g.Type == "" {
		g.Type = GoalTypeSavings
	}

	if !slices.Contains([]GoalType{GoalTypeSavings, GoalTypeSpending}, g.Type) {
		return ErrGoalTypeInvalid
	}

	return nil
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Goal)
	return g.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (g *Goal) checkIntegrity(tx *gorm.DB, toSave Goal) error {
	if toSave.AccountID == nil {
		return nil
	}

	return tx.First(&Account{}, *toSave.AccountID).Error
}

func (c *Contribution) BeforeSave(_ *gorm.DB) error {
	c.Note = strings.TrimSpace(c.Note)

	if c.Date.IsZero() {
		c.Date = time.Now().In(time.UTC)
	} else {
		c.Date = c.Date.In(time.UTC)
	}

	return nil
}
