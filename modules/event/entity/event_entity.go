package entity

import (
	"time"

	"meetease/core/entity"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
)

// Event is a scheduled meeting between a host and an invitee.
type Event struct {
	entity.BaseEntity
	HostID          uuid.UUID `db:"host_id" json:"host_id"`
	EventTypeID     uuid.UUID `db:"event_type_id" json:"event_type_id"`
	ContactID       uuid.UUID `db:"contact_id" json:"contact_id"`
	Title           string    `db:"title" json:"title"`
	Status          string    `db:"status" json:"status"`
	StartTime       time.Time `db:"start_time" json:"start_time"`
	EndTime         time.Time `db:"end_time" json:"end_time"`
	Timezone        string    `db:"timezone" json:"timezone"`
	MeetingLink     *string   `db:"meeting_link" json:"meeting_link,omitempty"`
	ProviderEventID *string   `db:"provider_event_id" json:"-"`
	GuestName       string    `db:"guest_name" json:"guest_name"`
	GuestEmail      string    `db:"guest_email" json:"guest_email"`
	GuestNotes      *string   `db:"guest_notes" json:"guest_notes,omitempty"`
}

type PaginatedEventEntity = entity.Pagination[Event]
