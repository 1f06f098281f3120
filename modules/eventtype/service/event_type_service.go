package service

import (
	"context"

	"meetease/core/constants"
	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/utils"
	"meetease/modules/eventtype/dto"
	"meetease/modules/eventtype/entity"
	"meetease/modules/eventtype/mapper"
	"meetease/modules/eventtype/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventTypeServiceInterface defines the service contract.
type EventTypeServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EventTypeResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.EventTypeListResponse, *errors.AppError)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
}

type EventTypeService struct {
	repo repository.EventTypeRepositoryInterface
}

func NewEventTypeService(repo repository.EventTypeRepositoryInterface) EventTypeServiceInterface {
	return &EventTypeService{repo: repo}
}

// deriveSlug builds a unique url slug from the title, appending a short
// suffix when the plain slug is taken.
func (s *EventTypeService) deriveSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "meeting"
	}

	taken, err := s.repo.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + utils.GenerateSlugSuffix(), nil
}

func (s *EventTypeService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "title is required", nil)
	}
	if req.DurationMinutes < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "duration_minutes must be positive", nil)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = constants.DefaultSlotDurationMinutes
	}

	urlSlug, err := s.deriveSlug(ctx, req.Title)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to derive slug", err)
	}

	eventType := &entity.EventType{
		UserID:          userID,
		Title:           req.Title,
		Slug:            urlSlug,
		DurationMinutes: duration,
		IsActive:        true,
	}
	if req.Description != "" {
		eventType.Description = &req.Description
	}
	if req.ClientTag != "" {
		eventType.ClientTag = &req.ClientTag
	}

	created, err := s.repo.Create(ctx, eventType)
	if err != nil {
		logger.Error("EventTypeService:Create:Error", "user_id", userID, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event type", err)
	}

	return mapper.ToEventTypeResponse(created), nil
}

func (s *EventTypeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EventTypeResponse, *errors.AppError) {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event type", err)
	}
	if eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event type not found", nil)
	}
	return mapper.ToEventTypeResponse(eventType), nil
}

func (s *EventTypeService) List(ctx context.Context, userID uuid.UUID) (*dto.EventTypeListResponse, *errors.AppError) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list event types", err)
	}
	return mapper.ToEventTypeListResponse(items), nil
}

func (s *EventTypeService) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *dto.UpdateEventTypeRequest) (*dto.EventTypeResponse, *errors.AppError) {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil || eventType == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event type not found", err)
	}
	if eventType.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}

	if req.Title != "" {
		eventType.Title = req.Title
	}
	if req.Description != "" {
		eventType.Description = &req.Description
	}
	if req.DurationMinutes > 0 {
		eventType.DurationMinutes = req.DurationMinutes
	}
	if req.IsActive != nil {
		eventType.IsActive = *req.IsActive
	}
	if req.ClientTag != "" {
		eventType.ClientTag = &req.ClientTag
	}

	if err := s.repo.Update(ctx, eventType); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event type", err)
	}
	return mapper.ToEventTypeResponse(eventType), nil
}

func (s *EventTypeService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	eventType, err := s.repo.GetByID(ctx, id)
	if err != nil || eventType == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event type not found", err)
	}
	if eventType.UserID != userID {
		return errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event type", err)
	}
	return nil
}
