package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"meetease/core/cache"
	"meetease/core/config"
	"meetease/core/constants"
	"meetease/core/errors"
	"meetease/core/logger"
	"meetease/core/storage"
	"meetease/core/utils"
	"meetease/modules/auth/dto"
	"meetease/modules/auth/entity"
	"meetease/modules/auth/mapper"
	"meetease/modules/auth/repository"
	calendarService "meetease/modules/calendar/service"

	"github.com/google/uuid"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, accessToken string) *errors.AppError
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError)
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError)
	GetGoogleAuthURL(ctx context.Context, userID uuid.UUID) (*dto.GoogleAuthURLResponse, *errors.AppError)
	HandleGoogleCallback(ctx context.Context, code, state string) *errors.AppError
}

type AuthService struct {
	repo        repository.AuthRepositoryInterface
	cache       cache.Cache
	calendarSvc calendarService.CalendarService
	uploader    *storage.Uploader
}

func NewAuthService(
	repo repository.AuthRepositoryInterface,
	c cache.Cache,
	calendarSvc calendarService.CalendarService,
	uploader *storage.Uploader,
) *AuthService {
	return &AuthService{
		repo:        repo,
		cache:       c,
		calendarSvc: calendarSvc,
		uploader:    uploader,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.ProfileResponse, *errors.AppError) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if req.Name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Name is required", nil)
	}
	if !utils.IsValidEmail(req.Email) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid email address", nil)
	}
	if len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 8 characters", nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email is already registered", nil)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create user", err)
	}

	logger.Info("AuthService:Register:Created", "userID", user.ID, "email", user.Email)
	return mapper.ToProfileResponse(user), nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load user", err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}
	if !utils.ComparePassword(*user.PasswordHash, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError) {
	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrTokenExpired, "Invalid refresh token", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "Token is not a refresh token", nil)
	}

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		logger.Error("AuthService:Refresh:BlacklistCheck", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Refresh token has been revoked", nil)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User no longer exists", nil)
	}

	// Rotate: the old refresh token is revoked for its remaining lifetime.
	if ttl := time.Until(claims.ExpiresAt.Time); ttl > 0 {
		if err := s.cache.BlacklistToken(ctx, refreshToken, ttl); err != nil {
			logger.Error("AuthService:Refresh:Blacklist", err)
		}
	}

	return s.issueTokens(user)
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(accessToken)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, accessToken, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}

	logger.Info("AuthService:Logout:Revoked", "userID", claims.UserID)
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	user, appErr := s.getUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	return mapper.ToProfileResponse(user), nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	user, appErr := s.getUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Name cannot be empty", nil)
		}
		user.Name = name
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update profile", err)
	}
	return mapper.ToProfileResponse(user), nil
}

func (s *AuthService) UploadAvatar(ctx context.Context, userID uuid.UUID, filename, contentType string, body io.Reader) (*dto.AvatarResponse, *errors.AppError) {
	user, appErr := s.getUser(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	ext := ""
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		ext = filename[idx:]
	}
	key := fmt.Sprintf("avatars/%s/%s%s", userID, utils.GenerateID(), ext)

	url, err := s.uploader.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload avatar", err)
	}

	user.AvatarURL = &url
	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to save avatar", err)
	}

	logger.Info("AuthService:UploadAvatar:Uploaded", "userID", userID, "key", key)
	return &dto.AvatarResponse{AvatarURL: url}, nil
}

func (s *AuthService) getUser(ctx context.Context, userID uuid.UUID) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	cfg := config.Get()
	accessTTL := time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute
	refreshTTL := time.Duration(cfg.JWT.RefreshTTLMinutes) * time.Minute

	accessToken, err := utils.GenerateToken(user.ID, &user.Email, &user.Name, constants.ScopeTokenAccess, accessTTL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sign access token", err)
	}
	refreshToken, err := utils.GenerateToken(user.ID, nil, nil, constants.ScopeTokenRefresh, refreshTTL)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sign refresh token", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(accessTTL.Seconds()),
	}, nil
}
