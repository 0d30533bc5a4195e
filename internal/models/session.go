package models

import (
	"time"

	"github.com/google/uuid"
)

// Session stores user login sessions so that tokens can be revoked on
// logout and audited afterwards.
type Session struct {
	DefaultModel
	UserID    uuid.UUID `json:"userId" gorm:"index"`
	User      User      `json:"-"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"index"`
	Revoked   bool      `json:"revoked"`
}

// Valid reports whether the session can still be used at the given time.
func (s Session) Valid(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
