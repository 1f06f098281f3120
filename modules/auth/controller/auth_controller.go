package controller

import (
	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/utils"
	"meetease/modules/auth/dto"
	"meetease/modules/auth/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

func (c *AuthController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims.UserID, nil
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.ProfileResponse
// @Failure 409 {object} errors.AppError
// @Router /public/auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Account created")
}

// Login handles POST /auth/login
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Logged in")
}

// Refresh handles POST /auth/refresh
// @Summary Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /public/auth/refresh [post]
func (c *AuthController) Refresh(ctx echo.Context) error {
	var req dto.RefreshRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.Refresh(ctx.Request().Context(), req.RefreshToken)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Token refreshed")
}

// Logout handles POST /auth/logout
// @Summary Revoke the current access token
// @Tags Auth
// @Security BearerAuth
// @Success 200 {object} controller.SuccessResponse
// @Router /private/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	token, err := utils.GetTokenFromHeader(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing authorization header")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Logged out")
}

// GetProfile handles GET /auth/profile
// @Summary Get my profile
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /private/auth/profile [get]
func (c *AuthController) GetProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AuthService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateProfile handles PUT /auth/profile
// @Summary Update my profile
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Changes"
// @Success 200 {object} dto.ProfileResponse
// @Router /private/auth/profile [put]
func (c *AuthController) UpdateProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AuthService.UpdateProfile(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Profile updated")
}

// UploadAvatar handles POST /auth/profile/avatar
// @Summary Upload a profile picture
// @Tags Auth
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file"
// @Success 200 {object} dto.AvatarResponse
// @Router /private/auth/profile/avatar [post]
func (c *AuthController) UploadAvatar(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Failed to read avatar file")
	}
	defer file.Close()

	result, appErr := c.AuthService.UploadAvatar(
		ctx.Request().Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Avatar uploaded")
}

// GetGoogleAuthURL handles GET /auth/google/url
// @Summary Get the Google Calendar consent URL
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.GoogleAuthURLResponse
// @Router /private/auth/google/url [get]
func (c *AuthController) GetGoogleAuthURL(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AuthService.GetGoogleAuthURL(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GoogleCallback handles GET /auth/google/callback
// @Summary OAuth callback for Google Calendar
// @Tags Auth
// @Param code query string true "Authorization code"
// @Param state query string true "State token"
// @Success 200 {object} controller.SuccessResponse
// @Router /public/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	code := ctx.QueryParam("code")
	state := ctx.QueryParam("state")
	if code == "" || state == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Code and state are required")
	}

	if appErr := c.AuthService.HandleGoogleCallback(ctx.Request().Context(), code, state); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Google Calendar connected")
}
