package service

import (
	"context"

	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/params"
	authRepo "meetease/modules/auth/repository"
	calendarService "meetease/modules/calendar/service"
	"meetease/modules/event/dto"
	"meetease/modules/event/entity"
	"meetease/modules/event/repository"
	notifDto "meetease/modules/notification/dto"
	notifEntity "meetease/modules/notification/entity"
	notifService "meetease/modules/notification/service"

	"github.com/google/uuid"
)

type EventServiceInterface interface {
	List(ctx context.Context, hostID uuid.UUID, status string, p params.QueryParams) (*dto.EventListResponse, *errors.AppError)
	GetByID(ctx context.Context, id, hostID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	Cancel(ctx context.Context, id, hostID uuid.UUID) *errors.AppError
}

type EventService struct {
	eventRepo    repository.EventRepositoryInterface
	userRepo     authRepo.AuthRepositoryInterface
	calendarSvc  calendarService.CalendarService
	notifService *notifService.NotificationService
}

func NewEventService(
	eventRepo repository.EventRepositoryInterface,
	userRepo authRepo.AuthRepositoryInterface,
	calendarSvc calendarService.CalendarService,
	notifSvc *notifService.NotificationService,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		calendarSvc:  calendarSvc,
		notifService: notifSvc,
	}
}

func (s *EventService) List(ctx context.Context, hostID uuid.UUID, status string, p params.QueryParams) (*dto.EventListResponse, *errors.AppError) {
	if status != "" && status != entity.StatusPending && status != entity.StatusScheduled && status != entity.StatusCancelled {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event status", nil)
	}

	result, err := s.eventRepo.ListByHost(ctx, hostID, status, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list events", err)
	}
	return dto.ToEventListResponse(result), nil
}

func (s *EventService) GetByID(ctx context.Context, id, hostID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, appErr := s.getOwnedEvent(ctx, id, hostID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToEventResponse(event), nil
}

// Cancel marks the meeting cancelled, removes it from the provider calendar
// and notifies both sides. Provider failures do not block the cancellation.
func (s *EventService) Cancel(ctx context.Context, id, hostID uuid.UUID) *errors.AppError {
	event, appErr := s.getOwnedEvent(ctx, id, hostID)
	if appErr != nil {
		return appErr
	}
	if event.Status == entity.StatusCancelled {
		return errors.NewAppError(errors.ErrInvalidInput, "Event is already cancelled", nil)
	}

	if event.ProviderEventID != nil {
		if appErr := s.calendarSvc.CancelEvent(ctx, hostID, *event.ProviderEventID); appErr != nil {
			logger.Warn("EventService:Cancel:ProviderCancel", "eventID", event.ID, "error", appErr.Error())
		}
	}

	if err := s.eventRepo.UpdateStatus(ctx, event.ID, entity.StatusCancelled); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to cancel event", err)
	}

	logger.Info("EventService:Cancel:Cancelled", "eventID", event.ID, "hostID", hostID)
	s.notifyCancellation(ctx, event)
	return nil
}

func (s *EventService) getOwnedEvent(ctx context.Context, id, hostID uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.HostID != hostID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Event belongs to another user", nil)
	}
	return event, nil
}

func (s *EventService) notifyCancellation(ctx context.Context, event *entity.Event) {
	hostName := ""
	hostEmail := ""
	if host, err := s.userRepo.GetUserByID(ctx, event.HostID); err == nil && host != nil {
		hostName = host.Name
		hostEmail = host.Email
	}

	if err := s.notifService.Create(ctx, &notifDto.CreateNotificationRequest{
		UserID:  event.HostID,
		Title:   "Meeting cancelled",
		Message: "The meeting '" + event.Title + "' with " + event.GuestName + " was cancelled",
		Type:    notifEntity.TypeBookingCancelled,
		Data: map[string]interface{}{
			"event_id": event.ID.String(),
		},
	}); err != nil {
		logger.Error("EventService:notifyCancellation:Notification", err)
	}

	emailData := notifService.BookingEmailData{
		EventTitle:  event.Title,
		HostName:    hostName,
		GuestName:   event.GuestName,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Timezone:    event.Timezone,
		MeetingLink: derefOrEmpty(event.MeetingLink),
	}

	subject, body := notifService.BuildCancellationEmail(emailData, event.GuestName)
	s.notifService.EnqueueEmail(ctx, []string{event.GuestEmail}, subject, body)

	if hostEmail != "" {
		subject, body = notifService.BuildCancellationEmail(emailData, hostName)
		s.notifService.EnqueueEmail(ctx, []string{hostEmail}, subject, body)
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
