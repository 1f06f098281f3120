package entity

import (
	"time"

	"meetease/core/entity"

	"github.com/google/uuid"
)

// CalendarConnection stores a user's calendar provider OAuth tokens.
type CalendarConnection struct {
	entity.BaseEntity
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Provider       string    `db:"provider" json:"provider"` // "google"
	AccessToken    string    `db:"access_token" json:"-"`
	RefreshToken   string    `db:"refresh_token" json:"-"`
	TokenExpiresAt time.Time `db:"token_expires_at" json:"token_expires_at"`
	CalendarEmail  string    `db:"calendar_email" json:"calendar_email"`
	IsActive       bool      `db:"is_active" json:"is_active"`
}
