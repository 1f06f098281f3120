package controller

import (
	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/utils"
	"meetease/modules/eventtype/dto"
	"meetease/modules/eventtype/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventTypeController handles meeting-template HTTP requests.
type EventTypeController struct {
	controller.BaseController
	EventTypeService service.EventTypeServiceInterface
}

func NewEventTypeController(svc service.EventTypeServiceInterface) *EventTypeController {
	return &EventTypeController{
		BaseController:   controller.NewBaseController(),
		EventTypeService: svc,
	}
}

func (c *EventTypeController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// Create handles POST /event-types
// @Summary Create a bookable event type
// @Tags EventType
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventTypeRequest true "Event type"
// @Success 200 {object} dto.EventTypeResponse
// @Failure 400 {object} errors.AppError
// @Router /private/event-types [post]
func (c *EventTypeController) Create(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventTypeService.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event type created")
}

// Get handles GET /event-types/:id
// @Summary Get an event type
// @Tags EventType
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event type ID"
// @Success 200 {object} dto.EventTypeResponse
// @Failure 404 {object} errors.AppError
// @Router /private/event-types/{id} [get]
func (c *EventTypeController) Get(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event type ID")
	}

	result, appErr := c.EventTypeService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// List handles GET /event-types
// @Summary List my event types
// @Tags EventType
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.EventTypeListResponse
// @Router /private/event-types [get]
func (c *EventTypeController) List(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.EventTypeService.List(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PUT /event-types/:id
// @Summary Update an event type
// @Tags EventType
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event type ID"
// @Param request body dto.UpdateEventTypeRequest true "Changes"
// @Success 200 {object} dto.EventTypeResponse
// @Router /private/event-types/{id} [put]
func (c *EventTypeController) Update(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event type ID")
	}

	var req dto.UpdateEventTypeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EventTypeService.Update(ctx.Request().Context(), id, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Event type updated")
}

// Delete handles DELETE /event-types/:id
// @Summary Delete an event type
// @Tags EventType
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/event-types/{id} [delete]
func (c *EventTypeController) Delete(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event type ID")
	}

	if appErr := c.EventTypeService.Delete(ctx.Request().Context(), id, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Event type deleted")
}
