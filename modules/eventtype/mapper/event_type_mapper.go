package mapper

import (
	"meetease/modules/eventtype/dto"
	"meetease/modules/eventtype/entity"
)

func ToEventTypeResponse(e *entity.EventType) *dto.EventTypeResponse {
	resp := &dto.EventTypeResponse{
		ID:              e.ID.String(),
		Title:           e.Title,
		Slug:            e.Slug,
		DurationMinutes: e.DurationMinutes,
		IsActive:        e.IsActive,
		BookingPath:     "/p/" + e.Slug,
	}
	if e.Description != nil {
		resp.Description = *e.Description
	}
	if e.ClientTag != nil {
		resp.ClientTag = *e.ClientTag
	}
	return resp
}

func ToEventTypeListResponse(items []entity.EventType) *dto.EventTypeListResponse {
	resp := &dto.EventTypeListResponse{Items: make([]dto.EventTypeResponse, 0, len(items))}
	for i := range items {
		resp.Items = append(resp.Items, *ToEventTypeResponse(&items[i]))
	}
	return resp
}
