package controller

import (
	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/utils"
	"meetease/modules/availability/dto"
	"meetease/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles weekly-schedule HTTP requests.
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// Upsert handles PUT /availabilities
// @Summary Set a weekly availability window
// @Description Creates or replaces the window for one day of the week
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpsertAvailabilityRequest true "Window"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} errors.AppError
// @Router /private/availabilities [put]
func (c *AvailabilityController) Upsert(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.UpsertAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.AvailabilityService.Upsert(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Availability saved")
}

// List handles GET /availabilities
// @Summary List my weekly availability windows
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AvailabilityListResponse
// @Router /private/availabilities [get]
func (c *AvailabilityController) List(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AvailabilityService.List(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Delete handles DELETE /availabilities/:day
// @Summary Remove the window for one day of the week
// @Tags Availability
// @Security BearerAuth
// @Param day path int true "Day of week (0=Sunday)"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/availabilities/{day} [delete]
func (c *AvailabilityController) Delete(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	day := utils.ToNumberWithDefault(ctx.Param("day"), -1)
	if appErr := c.AvailabilityService.Delete(ctx.Request().Context(), userID, day); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Availability deleted")
}
