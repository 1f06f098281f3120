package controller

import (
	"time"

	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/utils"
	"meetease/modules/calendar/dto"
	"meetease/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarService
}

func NewCalendarController(svc service.CalendarService) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: svc,
	}
}

func (c *CalendarController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetConnections handles GET /calendar/connections
// @Summary List my calendar connections
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CalendarConnectionResponse
// @Router /private/calendar/connections [get]
func (c *CalendarController) GetConnections(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CalendarService.GetConnections(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Disconnect handles DELETE /calendar/connections/:provider
// @Summary Disconnect a calendar provider
// @Tags Calendar
// @Security BearerAuth
// @Param provider path string true "Provider name"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/calendar/connections/{provider} [delete]
func (c *CalendarController) Disconnect(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	provider := ctx.Param("provider")
	if provider == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Provider is required")
	}

	if appErr := c.CalendarService.Disconnect(ctx.Request().Context(), userID, provider); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Calendar disconnected")
}

// GetFreeBusy handles GET /calendar/free-busy
// @Summary Get provider busy intervals
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param start query string true "Range start (RFC3339)"
// @Param end query string true "Range end (RFC3339)"
// @Success 200 {object} dto.FreeBusyResponse
// @Failure 502 {object} errors.AppError
// @Router /private/calendar/free-busy [get]
func (c *CalendarController) GetFreeBusy(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	start, err := time.Parse(time.RFC3339, ctx.QueryParam("start"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid start time, expected RFC3339")
	}
	end, err := time.Parse(time.RFC3339, ctx.QueryParam("end"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid end time, expected RFC3339")
	}
	if !end.After(start) {
		return c.BadRequest(errors.ErrInvalidInput, "End must be after start")
	}

	busy, appErr := c.CalendarService.GetBusyIntervals(ctx.Request().Context(), userID, start, end)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, &dto.FreeBusyResponse{Provider: dto.ProviderGoogle, Busy: busy}, "Success")
}
