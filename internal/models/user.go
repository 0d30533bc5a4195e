package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is the owner of all other resources.
//
// Balance, Debt and InterestFactor belong to the financing model: a user can
// take out at most one fixed-rate loan at a time, repaid in a single step.
type User struct {
	DefaultModel
	Username       string          `json:"username" gorm:"uniqueIndex" example:"morre"`
	PasswordHash   string          `json:"-"`
	Balance        decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)" example:"271.95"`
	Debt           decimal.Decimal `json:"debt" gorm:"type:DECIMAL(20,8)" example:"0"`
	InterestFactor decimal.Decimal `json:"interestFactor" gorm:"type:DECIMAL(20,8)" example:"1.1"`
}

var (
	ErrUsernameTaken      = errors.New("this username is already taken")
	ErrInvalidCredentials = errors.New("the username or password is incorrect")
)

// DefaultInterestFactor is applied on repayment of debts below the
// high-debt threshold.
var DefaultInterestFactor = decimal.NewFromFloat(1.1)

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	if u.InterestFactor.IsZero() {
		u.InterestFactor = DefaultInterestFactor
	}

	return nil
}

// SetPassword hashes the cleartext password and stores the hash.
func (u *User) SetPassword(password string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies the cleartext password against the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
