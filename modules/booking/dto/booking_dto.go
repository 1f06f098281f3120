package dto

import (
	"time"

	"github.com/google/uuid"
)

// BookingPageResponse is the public metadata shown on a booking page.
type BookingPageResponse struct {
	Slug            string  `json:"slug"`
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	HostName        string  `json:"host_name"`
}

type SlotListResponse struct {
	Date            string   `json:"date"`
	Timezone        string   `json:"timezone"`
	DurationMinutes int      `json:"duration_minutes"`
	HasAvailability bool     `json:"has_availability"`
	Slots           []string `json:"slots"`
}

type ScheduleBookingRequest struct {
	Date       string  `json:"date" validate:"required"`
	StartTime  string  `json:"start_time" validate:"required"`
	Timezone   string  `json:"timezone"`
	GuestName  string  `json:"guest_name" validate:"required"`
	GuestEmail string  `json:"guest_email" validate:"required,email"`
	Notes      *string `json:"notes,omitempty"`
}

type BookingConfirmationResponse struct {
	EventID     uuid.UUID `json:"event_id"`
	Title       string    `json:"title"`
	HostName    string    `json:"host_name"`
	GuestName   string    `json:"guest_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
}
