package dto

import "time"

const ProviderGoogle = "google"

type CalendarConnectionResponse struct {
	ID            string `json:"id"`
	Provider      string `json:"provider"`
	CalendarEmail string `json:"calendar_email"`
	IsActive      bool   `json:"is_active"`
	ConnectedAt   string `json:"connected_at"`
}

// BusyInterval is one blocked span reported by the provider, in UTC.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type FreeBusyResponse struct {
	Provider string         `json:"provider"`
	Busy     []BusyInterval `json:"busy"`
}

type CreateProviderEventRequest struct {
	Title          string
	Description    string
	StartTime      time.Time
	EndTime        time.Time
	Timezone       string
	AttendeeEmails []string
	RequestID      string
}

type ProviderEventResponse struct {
	EventID     string `json:"event_id"`
	MeetingLink string `json:"meeting_link"`
	HTMLLink    string `json:"html_link"`
}
