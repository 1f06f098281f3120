package entity

import (
	"meetease/core/entity"

	"github.com/google/uuid"
)

// Contact is a person who has booked (or may book) meetings with a user.
type Contact struct {
	entity.BaseEntity
	UserID uuid.UUID `db:"user_id" json:"user_id"`
	Name   string    `db:"name" json:"name"`
	Email  string    `db:"email" json:"email"`
	Notes  *string   `db:"notes" json:"notes,omitempty"`
}

type PaginatedContactEntity = entity.Pagination[Contact]
