package service

import (
	"context"
	"fmt"
	"time"

	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/modules/availability/dto"
	"meetease/modules/availability/entity"
	"meetease/modules/availability/repository"

	"github.com/google/uuid"
)

// AvailabilityServiceInterface defines the service contract.
type AvailabilityServiceInterface interface {
	Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError)
	List(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityListResponse, *errors.AppError)
	Delete(ctx context.Context, userID uuid.UUID, dayOfWeek int) *errors.AppError
}

type AvailabilityService struct {
	repo repository.AvailabilityRepositoryInterface
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface) AvailabilityServiceInterface {
	return &AvailabilityService{repo: repo}
}

// ParseClock parses an "HH:MM" (or "HH:MM:SS") wall-clock string into minutes
// since midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		t, err = time.Parse("15:04:05", value)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM", value)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

func validateWindow(req *dto.UpsertAvailabilityRequest) *errors.AppError {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return errors.NewAppError(errors.ErrInvalidInput, "day_of_week must be between 0 and 6", nil)
	}

	start, err := ParseClock(req.StartTime)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	end, err := ParseClock(req.EndTime)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, err.Error(), err)
	}
	if start >= end {
		return errors.NewAppError(errors.ErrInvalidInput, "start_time must be before end_time", nil)
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "unknown timezone "+req.Timezone, err)
	}
	return nil
}

func (s *AvailabilityService) Upsert(ctx context.Context, userID uuid.UUID, req *dto.UpsertAvailabilityRequest) (*dto.AvailabilityResponse, *errors.AppError) {
	if appErr := validateWindow(req); appErr != nil {
		return nil, appErr
	}

	saved, err := s.repo.Upsert(ctx, &entity.Availability{
		UserID:    userID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Timezone:  req.Timezone,
	})
	if err != nil {
		logger.Error("AvailabilityService:Upsert:Error", "user_id", userID, "error", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save availability", err)
	}

	return dto.ToAvailabilityResponse(saved), nil
}

func (s *AvailabilityService) List(ctx context.Context, userID uuid.UUID) (*dto.AvailabilityListResponse, *errors.AppError) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list availabilities", err)
	}

	resp := &dto.AvailabilityListResponse{Items: make([]dto.AvailabilityResponse, 0, len(items))}
	for i := range items {
		resp.Items = append(resp.Items, *dto.ToAvailabilityResponse(&items[i]))
	}
	return resp, nil
}

func (s *AvailabilityService) Delete(ctx context.Context, userID uuid.UUID, dayOfWeek int) *errors.AppError {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return errors.NewAppError(errors.ErrInvalidInput, "day_of_week must be between 0 and 6", nil)
	}
	if err := s.repo.Delete(ctx, userID, dayOfWeek); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete availability", err)
	}
	return nil
}
