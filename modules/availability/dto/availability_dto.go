package dto

import (
	"meetease/modules/availability/entity"
)

// UpsertAvailabilityRequest creates or replaces one weekly window.
type UpsertAvailabilityRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"` // "HH:MM"
	EndTime   string `json:"end_time" validate:"required"`   // "HH:MM"
	Timezone  string `json:"timezone" validate:"required"`   // IANA zone
}

// AvailabilityResponse is one weekly window.
type AvailabilityResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Timezone  string `json:"timezone"`
}

// AvailabilityListResponse is the full weekly schedule of a user.
type AvailabilityListResponse struct {
	Items []AvailabilityResponse `json:"items"`
}

func ToAvailabilityResponse(a *entity.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		ID:        a.ID.String(),
		DayOfWeek: a.DayOfWeek,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Timezone:  a.Timezone,
	}
}
