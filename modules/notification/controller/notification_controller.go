package controller

import (
	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/params"
	"meetease/core/utils"
	"meetease/modules/notification/dto"
	"meetease/modules/notification/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	NotificationService *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

func (c *NotificationController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetMyNotifications handles GET /notifications
// @Summary List my notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Param page_number query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} entity.PaginatedNotificationEntity
// @Router /private/notifications [get]
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, err := c.NotificationService.GetMyNotifications(ctx.Request().Context(), userID, params.FromContext(ctx))
	if err != nil {
		return c.InternalServerError(errors.ErrGetFailed, "Failed to list notifications")
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// MarkAsRead handles PUT /notifications/read
// @Summary Mark notifications as read
// @Tags Notification
// @Security BearerAuth
// @Accept json
// @Param request body dto.MarkAsReadRequest true "Notification IDs"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/notifications/read [put]
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.MarkAsReadRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if err := c.NotificationService.MarkAsRead(ctx.Request().Context(), userID, req.IDs); err != nil {
		return c.InternalServerError(errors.ErrUpdateFailed, "Failed to mark notifications as read")
	}
	return c.SuccessResponse(ctx, nil, "Notifications marked as read")
}

// MarkAllAsRead handles PUT /notifications/read-all
// @Summary Mark all notifications as read
// @Tags Notification
// @Security BearerAuth
// @Success 200 {object} controller.SuccessResponse
// @Router /private/notifications/read-all [put]
func (c *NotificationController) MarkAllAsRead(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	if err := c.NotificationService.MarkAllAsRead(ctx.Request().Context(), userID); err != nil {
		return c.InternalServerError(errors.ErrUpdateFailed, "Failed to mark notifications as read")
	}
	return c.SuccessResponse(ctx, nil, "All notifications marked as read")
}

// CountUnread handles GET /notifications/unread-count
// @Summary Count unread notifications
// @Tags Notification
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UnreadCountResponse
// @Router /private/notifications/unread-count [get]
func (c *NotificationController) CountUnread(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	count, err := c.NotificationService.CountUnread(ctx.Request().Context(), userID)
	if err != nil {
		return c.InternalServerError(errors.ErrGetFailed, "Failed to count unread notifications")
	}
	return c.SuccessResponse(ctx, dto.UnreadCountResponse{Count: count}, "Success")
}
