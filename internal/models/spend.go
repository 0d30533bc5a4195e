package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Spend is a dated expenditure. Spends are matched against the category of
// spending goals to compute their progress; the allocation core only reads
// them.
type Spend struct {
	DefaultModel
	User     User            `json:"-"`
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	Category string          `json:"category" gorm:"index" example:"groceries"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12.07"`
	Date     time.Time       `json:"date" example:"2026-08-01T00:00:00Z"`
}

func (s *Spend) BeforeSave(_ *gorm.DB) error {
	s.Category = strings.TrimSpace(s.Category)

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	return nil
}
