package service

import (
	"context"
	"fmt"
	"time"

	"meetease/core/config"
	"meetease/core/constants"
	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/modules/calendar/dto"
	"meetease/modules/calendar/entity"
	"meetease/modules/calendar/repository"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleCalendarAPIBase = "https://www.googleapis.com/calendar/v3"

type CalendarService interface {
	SaveGoogleConnection(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time, email string) (*entity.CalendarConnection, *errors.AppError)
	GetConnections(ctx context.Context, userID uuid.UUID) ([]dto.CalendarConnectionResponse, *errors.AppError)
	Disconnect(ctx context.Context, userID uuid.UUID, provider string) *errors.AppError

	// GetBusyIntervals reports the provider's blocked spans between timeMin
	// and timeMax. A user without an active connection is treated as free.
	GetBusyIntervals(ctx context.Context, userID uuid.UUID, timeMin, timeMax time.Time) ([]dto.BusyInterval, *errors.AppError)

	// CreateMeetingEvent creates the event on the provider calendar with a
	// conference link. Returns (nil, nil) when the user has no connection.
	CreateMeetingEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateProviderEventRequest) (*dto.ProviderEventResponse, *errors.AppError)
	CancelEvent(ctx context.Context, userID uuid.UUID, providerEventID string) *errors.AppError
}

type calendarService struct {
	repo repository.CalendarRepository
	http *resty.Client
}

func NewCalendarService(repo repository.CalendarRepository) CalendarService {
	client := resty.New().
		SetBaseURL(googleCalendarAPIBase).
		SetTimeout(constants.DefaultRequestTimeout)

	return &calendarService{repo: repo, http: client}
}

func (s *calendarService) SaveGoogleConnection(ctx context.Context, userID uuid.UUID, accessToken, refreshToken string, expiresAt time.Time, email string) (*entity.CalendarConnection, *errors.AppError) {
	conn := &entity.CalendarConnection{
		UserID:         userID,
		Provider:       dto.ProviderGoogle,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		TokenExpiresAt: expiresAt,
		CalendarEmail:  email,
	}

	saved, err := s.repo.UpsertConnection(ctx, conn)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to save calendar connection", err)
	}

	logger.Info("CalendarService:SaveGoogleConnection:Saved", "userID", userID, "email", email)
	return saved, nil
}

func (s *calendarService) GetConnections(ctx context.Context, userID uuid.UUID) ([]dto.CalendarConnectionResponse, *errors.AppError) {
	connections, err := s.repo.GetConnectionsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list calendar connections", err)
	}

	result := make([]dto.CalendarConnectionResponse, 0, len(connections))
	for _, conn := range connections {
		result = append(result, dto.CalendarConnectionResponse{
			ID:            conn.ID.String(),
			Provider:      conn.Provider,
			CalendarEmail: conn.CalendarEmail,
			IsActive:      conn.IsActive,
			ConnectedAt:   conn.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *calendarService) Disconnect(ctx context.Context, userID uuid.UUID, provider string) *errors.AppError {
	if err := s.repo.DeactivateConnection(ctx, userID, provider); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to disconnect calendar", err)
	}
	return nil
}

func (s *calendarService) GetBusyIntervals(ctx context.Context, userID uuid.UUID, timeMin, timeMax time.Time) ([]dto.BusyInterval, *errors.AppError) {
	conn, err := s.repo.GetConnectionByUserAndProvider(ctx, userID, dto.ProviderGoogle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar connection", err)
	}
	if conn == nil {
		return []dto.BusyInterval{}, nil
	}

	accessToken, appErr := s.ensureValidToken(ctx, conn)
	if appErr != nil {
		return nil, appErr
	}

	payload := map[string]any{
		"timeMin": timeMin.UTC().Format(time.RFC3339),
		"timeMax": timeMax.UTC().Format(time.RFC3339),
		"items":   []map[string]string{{"id": conn.CalendarEmail}},
	}

	var result struct {
		Calendars map[string]struct {
			Busy []struct {
				Start time.Time `json:"start"`
				End   time.Time `json:"end"`
			} `json:"busy"`
		} `json:"calendars"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetBody(payload).
		SetResult(&result).
		Post("/freeBusy")
	if err != nil {
		logger.Error("CalendarService:GetBusyIntervals:Request", err)
		return nil, errors.NewAppError(errors.ErrProviderUnavailable, "Calendar provider is unreachable", err)
	}
	if resp.IsError() {
		logger.Error("CalendarService:GetBusyIntervals:Status", "status", resp.StatusCode(), "body", resp.String())
		return nil, errors.NewAppError(errors.ErrProviderUnavailable,
			fmt.Sprintf("Calendar provider returned %d", resp.StatusCode()), nil)
	}

	busy := make([]dto.BusyInterval, 0)
	if cal, ok := result.Calendars[conn.CalendarEmail]; ok {
		for _, b := range cal.Busy {
			busy = append(busy, dto.BusyInterval{Start: b.Start, End: b.End})
		}
	}
	return busy, nil
}

func (s *calendarService) CreateMeetingEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateProviderEventRequest) (*dto.ProviderEventResponse, *errors.AppError) {
	conn, err := s.repo.GetConnectionByUserAndProvider(ctx, userID, dto.ProviderGoogle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar connection", err)
	}
	if conn == nil {
		return nil, nil
	}

	accessToken, appErr := s.ensureValidToken(ctx, conn)
	if appErr != nil {
		return nil, appErr
	}

	event := map[string]any{
		"summary":     req.Title,
		"description": req.Description,
		"start": map[string]string{
			"dateTime": req.StartTime.Format(time.RFC3339),
			"timeZone": req.Timezone,
		},
		"end": map[string]string{
			"dateTime": req.EndTime.Format(time.RFC3339),
			"timeZone": req.Timezone,
		},
		"conferenceData": map[string]any{
			"createRequest": map[string]any{
				"requestId":             req.RequestID,
				"conferenceSolutionKey": map[string]string{"type": "hangoutsMeet"},
			},
		},
	}
	if len(req.AttendeeEmails) > 0 {
		attendees := make([]map[string]string, len(req.AttendeeEmails))
		for i, email := range req.AttendeeEmails {
			attendees[i] = map[string]string{"email": email}
		}
		event["attendees"] = attendees
	}

	var result struct {
		ID          string `json:"id"`
		HangoutLink string `json:"hangoutLink"`
		HTMLLink    string `json:"htmlLink"`
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("conferenceDataVersion", "1").
		SetBody(event).
		SetResult(&result).
		Post("/calendars/primary/events")
	if err != nil {
		logger.Error("CalendarService:CreateMeetingEvent:Request", err)
		return nil, errors.NewAppError(errors.ErrProviderUnavailable, "Calendar provider is unreachable", err)
	}
	if resp.IsError() {
		logger.Error("CalendarService:CreateMeetingEvent:Status", "status", resp.StatusCode(), "body", resp.String())
		return nil, errors.NewAppError(errors.ErrProviderUnavailable,
			fmt.Sprintf("Calendar provider returned %d", resp.StatusCode()), nil)
	}

	logger.Info("CalendarService:CreateMeetingEvent:Created", "userID", userID, "eventID", result.ID)
	return &dto.ProviderEventResponse{
		EventID:     result.ID,
		MeetingLink: result.HangoutLink,
		HTMLLink:    result.HTMLLink,
	}, nil
}

func (s *calendarService) CancelEvent(ctx context.Context, userID uuid.UUID, providerEventID string) *errors.AppError {
	if providerEventID == "" {
		return nil
	}

	conn, err := s.repo.GetConnectionByUserAndProvider(ctx, userID, dto.ProviderGoogle)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Failed to load calendar connection", err)
	}
	if conn == nil {
		return nil
	}

	accessToken, appErr := s.ensureValidToken(ctx, conn)
	if appErr != nil {
		return appErr
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("sendUpdates", "all").
		Delete("/calendars/primary/events/" + providerEventID)
	if err != nil {
		logger.Error("CalendarService:CancelEvent:Request", err)
		return errors.NewAppError(errors.ErrProviderUnavailable, "Calendar provider is unreachable", err)
	}
	// 404 and 410 mean the event is already gone on the provider side.
	if resp.IsError() && resp.StatusCode() != 404 && resp.StatusCode() != 410 {
		logger.Error("CalendarService:CancelEvent:Status", "status", resp.StatusCode(), "body", resp.String())
		return errors.NewAppError(errors.ErrProviderUnavailable,
			fmt.Sprintf("Calendar provider returned %d", resp.StatusCode()), nil)
	}
	return nil
}

// ensureValidToken refreshes the access token when it expires within the
// next five minutes, persisting the refreshed credentials.
func (s *calendarService) ensureValidToken(ctx context.Context, conn *entity.CalendarConnection) (string, *errors.AppError) {
	if time.Now().Before(conn.TokenExpiresAt.Add(-5 * time.Minute)) {
		return conn.AccessToken, nil
	}

	logger.Info("CalendarService:ensureValidToken:Refreshing", "userID", conn.UserID)

	cfg, ok := config.GetSafe()
	if !ok {
		return "", errors.NewAppError(errors.ErrInternalServer, "Config not initialized", nil)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: conn.RefreshToken})
	newToken, err := tokenSource.Token()
	if err != nil {
		logger.Error("CalendarService:ensureValidToken:Refresh", err)
		return "", errors.NewAppError(errors.ErrProviderUnavailable, "Failed to refresh provider token", err)
	}

	conn.AccessToken = newToken.AccessToken
	if newToken.RefreshToken != "" {
		conn.RefreshToken = newToken.RefreshToken
	}
	conn.TokenExpiresAt = newToken.Expiry

	if err := s.repo.UpdateTokens(ctx, conn); err != nil {
		logger.Error("CalendarService:ensureValidToken:Persist", err)
	}
	return conn.AccessToken, nil
}
