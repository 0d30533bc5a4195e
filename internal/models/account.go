package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AccountType distinguishes savings accounts from spending accounts.
type AccountType string

const (
	AccountTypeSavings  AccountType = "savings"
	AccountTypeSpending AccountType = "spending"
)

// Account represents an asset account holding a balance that goals under it
// subdivide into allocations.
type Account struct {
	DefaultModel
	User    User            `json:"-"`
	UserID  uuid.UUID       `json:"userId" gorm:"uniqueIndex:account_name_user_id" example:"550dc009-cea6-4c12-b2a5-03446eb7b7cf"`
	Name    string          `json:"name" gorm:"uniqueIndex:account_name_user_id" example:"Checking"`
	Type    AccountType     `json:"type" gorm:"default:savings" example:"savings"`
	Balance decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8);check:balance_non_negative,balance >= 0" example:"271.95"`
	Active  bool            `json:"active" gorm:"default:true" example:"true"`
}

var (
	ErrAccountNameNotUnique   = errors.New("the account name must be unique for the user")
	ErrAccountBalanceNegative = errors.New("the account balance must not be negative")
	ErrAccountTypeInvalid     = errors.New("the account type must be savings or spending")
)

// BeforeSave trims whitespace and defaults the account type.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)

	if a.Type == "" {
		a.Type = AccountTypeSavings
	}

	if !slices.Contains([]AccountType{AccountTypeSavings, AccountTypeSpending}, a.Type) {
		return ErrAccountTypeInvalid
	}

	return nil
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Account)
	return a.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (a *Account) checkIntegrity(tx *gorm.DB, toSave Account) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// Goals returns all goals funded by this account.
func (a Account) Goals(db *gorm.DB) ([]Goal, error) {
	var goals []Goal
	err := db.Where(&Goal{AccountID: &a.ID}).Find(&goals).Error
	return goals, err
}
