package service

import (
	"context"
	"time"

	"meetease/core/config"
	"meetease/core/constants"
	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/utils"
	"meetease/modules/auth/dto"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var googleScopes = []string{
	"https://www.googleapis.com/auth/calendar.events",
	"https://www.googleapis.com/auth/calendar.freebusy",
	"https://www.googleapis.com/auth/userinfo.email",
}

func googleOAuthConfig() *oauth2.Config {
	cfg := config.Get()
	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       googleScopes,
		Endpoint:     google.Endpoint,
	}
}

// GetGoogleAuthURL builds the consent URL for connecting Google Calendar.
// The state parameter is a short-lived signed token identifying the user, so
// the public callback can attribute the grant without a session.
func (s *AuthService) GetGoogleAuthURL(ctx context.Context, userID uuid.UUID) (*dto.GoogleAuthURLResponse, *errors.AppError) {
	state, err := utils.GenerateToken(userID, nil, nil, constants.ScopeTokenBookingApproval, 10*time.Minute)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sign state token", err)
	}

	url := googleOAuthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return &dto.GoogleAuthURLResponse{URL: url}, nil
}

// HandleGoogleCallback exchanges the authorization code and stores the
// calendar connection for the user encoded in the state token.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code, state string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(state)
	if err != nil || claims.Scope != constants.ScopeTokenBookingApproval {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired state", err)
	}

	token, err := googleOAuthConfig().Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange", err)
		return errors.NewAppError(errors.ErrProviderUnavailable, "Failed to exchange authorization code", err)
	}

	email, appErr := fetchGoogleEmail(ctx, token.AccessToken)
	if appErr != nil {
		return appErr
	}

	if _, appErr := s.calendarSvc.SaveGoogleConnection(ctx, claims.UserID,
		token.AccessToken, token.RefreshToken, token.Expiry, email); appErr != nil {
		return appErr
	}

	logger.Info("AuthService:HandleGoogleCallback:Connected", "userID", claims.UserID, "email", email)
	return nil
}

func fetchGoogleEmail(ctx context.Context, accessToken string) (string, *errors.AppError) {
	var userInfo struct {
		Email string `json:"email"`
	}

	resp, err := resty.New().
		SetTimeout(10 * time.Second).
		R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&userInfo).
		Get(googleUserInfoURL)
	if err != nil {
		logger.Error("AuthService:fetchGoogleEmail:Request", err)
		return "", errors.NewAppError(errors.ErrProviderUnavailable, "Failed to fetch Google profile", err)
	}
	if resp.IsError() || userInfo.Email == "" {
		logger.Error("AuthService:fetchGoogleEmail:Status", "status", resp.StatusCode(), "body", resp.String())
		return "", errors.NewAppError(errors.ErrProviderUnavailable, "Failed to fetch Google profile", nil)
	}
	return userInfo.Email, nil
}
