package entity

import (
	"meetease/core/entity"

	"github.com/google/uuid"
)

// EventType is a bookable meeting template offered to external invitees.
type EventType struct {
	entity.BaseEntity
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	Title           string    `db:"title" json:"title"`
	Slug            string    `db:"slug" json:"slug"`
	Description     *string   `db:"description" json:"description,omitempty"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	ClientTag       *string   `db:"client_tag" json:"client_tag,omitempty"`
}
