package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"meetease/core/cache"
	"meetease/core/constants"
	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/utils"
	authRepo "meetease/modules/auth/repository"
	availabilityRepo "meetease/modules/availability/repository"
	"meetease/modules/booking/dto"
	calendarDto "meetease/modules/calendar/dto"
	calendarService "meetease/modules/calendar/service"
	contactService "meetease/modules/contact/service"
	eventEntity "meetease/modules/event/entity"
	eventRepo "meetease/modules/event/repository"
	eventTypeEntity "meetease/modules/eventtype/entity"
	eventTypeRepo "meetease/modules/eventtype/repository"
	notifDto "meetease/modules/notification/dto"
	notifEntity "meetease/modules/notification/entity"
	notifService "meetease/modules/notification/service"

	"github.com/google/uuid"
)

type BookingServiceInterface interface {
	GetBookingPage(ctx context.Context, slug string) (*dto.BookingPageResponse, *errors.AppError)
	GetSlots(ctx context.Context, slug, date, timezone string) (*dto.SlotListResponse, *errors.AppError)
	Schedule(ctx context.Context, slug string, req *dto.ScheduleBookingRequest) (*dto.BookingConfirmationResponse, *errors.AppError)
}

type BookingService struct {
	eventTypeRepo    eventTypeRepo.EventTypeRepositoryInterface
	availabilityRepo availabilityRepo.AvailabilityRepositoryInterface
	eventRepo        eventRepo.EventRepositoryInterface
	userRepo         authRepo.AuthRepositoryInterface
	contactSvc       contactService.ContactServiceInterface
	calendarSvc      calendarService.CalendarService
	notifSvc         *notifService.NotificationService
	cache            cache.Cache
	now              func() time.Time
}

func NewBookingService(
	etRepo eventTypeRepo.EventTypeRepositoryInterface,
	avRepo availabilityRepo.AvailabilityRepositoryInterface,
	evRepo eventRepo.EventRepositoryInterface,
	userRepo authRepo.AuthRepositoryInterface,
	contactSvc contactService.ContactServiceInterface,
	calendarSvc calendarService.CalendarService,
	notifSvc *notifService.NotificationService,
	c cache.Cache,
) *BookingService {
	return &BookingService{
		eventTypeRepo:    etRepo,
		availabilityRepo: avRepo,
		eventRepo:        evRepo,
		userRepo:         userRepo,
		contactSvc:       contactSvc,
		calendarSvc:      calendarSvc,
		notifSvc:         notifSvc,
		cache:            c,
		now:              time.Now,
	}
}

func (s *BookingService) GetBookingPage(ctx context.Context, slug string) (*dto.BookingPageResponse, *errors.AppError) {
	eventType, appErr := s.getActiveEventType(ctx, slug)
	if appErr != nil {
		return nil, appErr
	}

	hostName := ""
	if host, err := s.userRepo.GetUserByID(ctx, eventType.UserID); err == nil && host != nil {
		hostName = host.Name
	}

	return &dto.BookingPageResponse{
		Slug:            eventType.Slug,
		Title:           eventType.Title,
		Description:     eventType.Description,
		DurationMinutes: eventType.DurationMinutes,
		HostName:        hostName,
	}, nil
}

func (s *BookingService) GetSlots(ctx context.Context, slug, date, timezone string) (*dto.SlotListResponse, *errors.AppError) {
	cacheKey := slotCacheKey(slug, date, timezone)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var resp dto.SlotListResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	eventType, appErr := s.getActiveEventType(ctx, slug)
	if appErr != nil {
		return nil, appErr
	}

	window, busy, appErr := s.loadDayInputs(ctx, eventType.UserID, date)
	if appErr != nil {
		return nil, appErr
	}

	slots, appErr := ComputeAvailableSlots(date, timezone, window, eventType.DurationMinutes, busy, s.now())
	if appErr != nil {
		return nil, appErr
	}

	effectiveTz := timezone
	if effectiveTz == "" && window != nil {
		effectiveTz = window.Timezone
	}

	resp := &dto.SlotListResponse{
		Date:            date,
		Timezone:        effectiveTz,
		DurationMinutes: eventType.DurationMinutes,
		HasAvailability: window != nil,
		Slots:           slots,
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(data), constants.SlotCacheTTL); err != nil {
				logger.Debug("BookingService:GetSlots:CacheSet", "key", cacheKey, "error", err)
			}
		}
	}
	return resp, nil
}

// Schedule books a slot: it re-validates the slot against current busy data,
// creates the provider event, persists the meeting and queues confirmations.
// The slot list is advisory, the provider remains the source of truth for
// conflicts.
func (s *BookingService) Schedule(ctx context.Context, slug string, req *dto.ScheduleBookingRequest) (*dto.BookingConfirmationResponse, *errors.AppError) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.ToLower(strings.TrimSpace(req.GuestEmail))
	if req.GuestName == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Guest name is required", nil)
	}
	if !utils.IsValidEmail(req.GuestEmail) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid guest email", nil)
	}

	eventType, appErr := s.getActiveEventType(ctx, slug)
	if appErr != nil {
		return nil, appErr
	}

	host, err := s.userRepo.GetUserByID(ctx, eventType.UserID)
	if err != nil || host == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load host", err)
	}

	window, busy, appErr := s.loadDayInputs(ctx, eventType.UserID, req.Date)
	if appErr != nil {
		return nil, appErr
	}
	if window == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Host has no availability on that day", nil)
	}

	candidates, appErr := ComputeSlotCandidates(req.Date, req.Timezone, window, eventType.DurationMinutes, busy, s.now())
	if appErr != nil {
		return nil, appErr
	}

	var picked *SlotCandidate
	for i := range candidates {
		if candidates[i].Label == req.StartTime {
			picked = &candidates[i]
			break
		}
	}
	if picked == nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Slot is no longer available", nil)
	}

	duration := eventType.DurationMinutes
	if duration <= 0 {
		duration = constants.DefaultSlotDurationMinutes
	}
	startTime := picked.Start
	endTime := startTime.Add(time.Duration(duration) * time.Minute)

	contact, appErr := s.contactSvc.RecordBooking(ctx, eventType.UserID, req.GuestName, req.GuestEmail)
	if appErr != nil {
		return nil, appErr
	}

	title := eventType.Title + " with " + req.GuestName

	providerEvent, appErr := s.calendarSvc.CreateMeetingEvent(ctx, eventType.UserID, &calendarDto.CreateProviderEventRequest{
		Title:          title,
		Description:    derefOrEmpty(req.Notes),
		StartTime:      startTime,
		EndTime:        endTime,
		Timezone:       window.Timezone,
		AttendeeEmails: []string{host.Email, req.GuestEmail},
		RequestID:      utils.GenerateID(),
	})
	if appErr != nil {
		return nil, appErr
	}

	guestTz := req.Timezone
	if guestTz == "" {
		guestTz = window.Timezone
	}

	event := &eventEntity.Event{
		HostID:      eventType.UserID,
		EventTypeID: eventType.ID,
		ContactID:   contact.ID,
		Title:       title,
		Status:      eventEntity.StatusScheduled,
		StartTime:   startTime.UTC(),
		EndTime:     endTime.UTC(),
		Timezone:    guestTz,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestNotes:  req.Notes,
	}
	if providerEvent != nil {
		event.ProviderEventID = &providerEvent.EventID
		if providerEvent.MeetingLink != "" {
			event.MeetingLink = &providerEvent.MeetingLink
		}
	}

	saved, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to save meeting", err)
	}

	logger.Info("BookingService:Schedule:Booked",
		"eventID", saved.ID,
		"slug", slug,
		"start", startTime.Format(time.RFC3339),
		"guest", req.GuestEmail,
	)

	s.invalidateSlotCache(ctx, slug, req.Date, req.Timezone)
	s.notifyBooking(ctx, saved, host.Name, host.Email)

	return &dto.BookingConfirmationResponse{
		EventID:     saved.ID,
		Title:       saved.Title,
		HostName:    host.Name,
		GuestName:   saved.GuestName,
		StartTime:   saved.StartTime,
		EndTime:     saved.EndTime,
		Timezone:    saved.Timezone,
		MeetingLink: saved.MeetingLink,
	}, nil
}

func (s *BookingService) getActiveEventType(ctx context.Context, slug string) (*eventTypeEntity.EventType, *errors.AppError) {
	eventType, err := s.eventTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load booking page", err)
	}
	if eventType == nil || !eventType.IsActive {
		return nil, errors.NewAppError(errors.ErrNotFound, "Booking page not found", nil)
	}
	return eventType, nil
}

// loadDayInputs gathers the availability window and the merged busy
// intervals (provider free/busy plus already-scheduled meetings) for one day.
func (s *BookingService) loadDayInputs(ctx context.Context, hostID uuid.UUID, date string) (*AvailabilityWindow, []calendarDto.BusyInterval, *errors.AppError) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "invalid date "+date+": expected YYYY-MM-DD", err)
	}

	availability, err := s.availabilityRepo.GetByUserAndDay(ctx, hostID, int(parsed.Weekday()))
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load availability", err)
	}
	if availability == nil {
		return nil, nil, nil
	}

	loc, err := time.LoadLocation(availability.Timezone)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "unknown timezone "+availability.Timezone, err)
	}

	year, month, day := parsed.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, appErr := s.calendarSvc.GetBusyIntervals(ctx, hostID, dayStart, dayEnd)
	if appErr != nil {
		return nil, nil, appErr
	}

	scheduled, err := s.eventRepo.ListScheduledBetween(ctx, hostID, dayStart, dayEnd)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load scheduled meetings", err)
	}
	for _, ev := range scheduled {
		busy = append(busy, calendarDto.BusyInterval{Start: ev.StartTime, End: ev.EndTime})
	}

	window := &AvailabilityWindow{
		StartTime: availability.StartTime,
		EndTime:   availability.EndTime,
		Timezone:  availability.Timezone,
	}
	return window, busy, nil
}

func (s *BookingService) notifyBooking(ctx context.Context, event *eventEntity.Event, hostName, hostEmail string) {
	if err := s.notifSvc.Create(ctx, &notifDto.CreateNotificationRequest{
		UserID:  event.HostID,
		Title:   "New booking",
		Message: event.GuestName + " booked '" + event.Title + "'",
		Type:    notifEntity.TypeBookingCreated,
		Data: map[string]interface{}{
			"event_id":    event.ID.String(),
			"guest_email": event.GuestEmail,
		},
	}); err != nil {
		logger.Error("BookingService:notifyBooking:Notification", err)
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

	subject, body := notifService.BuildHostConfirmationEmail(emailData)
	s.notifSvc.EnqueueEmail(ctx, []string{hostEmail}, subject, body)

	subject, body = notifService.BuildGuestConfirmationEmail(emailData)
	s.notifSvc.EnqueueEmail(ctx, []string{event.GuestEmail}, subject, body)
}

func (s *BookingService) invalidateSlotCache(ctx context.Context, slug, date, timezone string) {
	if s.cache == nil {
		return
	}
	keys := []string{slotCacheKey(slug, date, timezone)}
	if timezone != "" {
		keys = append(keys, slotCacheKey(slug, date, ""))
	}
	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			logger.Debug("BookingService:invalidateSlotCache", "key", key, "error", err)
		}
	}
}

func slotCacheKey(slug, date, timezone string) string {
	return constants.RedisKeySlotCache + slug + ":" + date + ":" + timezone
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
