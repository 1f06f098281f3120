package dto

// CreateEventTypeRequest creates a bookable meeting template.
type CreateEventTypeRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0,max=480"`
	ClientTag       string `json:"client_tag"`
}

// UpdateEventTypeRequest updates a meeting template.
type UpdateEventTypeRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0,max=480"`
	IsActive        *bool  `json:"is_active"`
	ClientTag       string `json:"client_tag"`
}

// EventTypeResponse is a meeting template.
type EventTypeResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"duration_minutes"`
	IsActive        bool   `json:"is_active"`
	ClientTag       string `json:"client_tag,omitempty"`
	BookingPath     string `json:"booking_path"`
}

// EventTypeListResponse lists meeting templates.
type EventTypeListResponse struct {
	Items []EventTypeResponse `json:"items"`
}
