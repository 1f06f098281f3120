package entity

import (
	"meetease/core/entity"
)

// User is an account that owns availabilities, event types and meetings.
type User struct {
	entity.BaseEntity
	Name         string  `db:"name" json:"name"`
	Email        string  `db:"email" json:"email"`
	PasswordHash *string `db:"password_hash" json:"-"`
	AvatarURL    *string `db:"avatar_url" json:"avatar_url,omitempty"`
}
