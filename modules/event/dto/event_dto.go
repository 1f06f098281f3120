package dto

import (
	"time"

	"meetease/modules/event/entity"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	EventTypeID uuid.UUID `json:"event_type_id"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Timezone    string    `json:"timezone"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
	GuestName   string    `json:"guest_name"`
	GuestEmail  string    `json:"guest_email"`
	GuestNotes  *string   `json:"guest_notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

func ToEventResponse(e *entity.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		EventTypeID: e.EventTypeID,
		Title:       e.Title,
		Status:      e.Status,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Timezone:    e.Timezone,
		MeetingLink: e.MeetingLink,
		GuestName:   e.GuestName,
		GuestEmail:  e.GuestEmail,
		GuestNotes:  e.GuestNotes,
		CreatedAt:   e.CreatedAt,
	}
}

func ToEventListResponse(p *entity.PaginatedEventEntity) *EventListResponse {
	events := make([]EventResponse, 0, len(p.Items))
	for i := range p.Items {
		events = append(events, *ToEventResponse(&p.Items[i]))
	}
	return &EventListResponse{
		Events:     events,
		TotalItems: p.TotalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
