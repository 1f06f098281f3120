package controller

import (
	"meetease/core/constants"
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/core/params"
	"meetease/core/utils"
	"meetease/modules/contact/dto"
	"meetease/modules/contact/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContactController struct {
	controller.BaseController
	ContactService service.ContactServiceInterface
}

func NewContactController(svc service.ContactServiceInterface) *ContactController {
	return &ContactController{
		BaseController: controller.NewBaseController(),
		ContactService: svc,
	}
}

func (c *ContactController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// List handles GET /contacts
// @Summary List my contacts
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param page_number query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.ContactListResponse
// @Router /private/contacts [get]
func (c *ContactController) List(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ContactService.List(ctx.Request().Context(), userID, params.FromContext(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Get handles GET /contacts/:id
// @Summary Get a contact
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} dto.ContactResponse
// @Failure 404 {object} errors.AppError
// @Router /private/contacts/{id} [get]
func (c *ContactController) Get(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid contact ID")
	}

	result, appErr := c.ContactService.GetByID(ctx.Request().Context(), id, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Update handles PUT /contacts/:id
// @Summary Update a contact
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactRequest true "Changes"
// @Success 200 {object} dto.ContactResponse
// @Router /private/contacts/{id} [put]
func (c *ContactController) Update(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid contact ID")
	}

	var req dto.UpdateContactRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.ContactService.Update(ctx.Request().Context(), id, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Contact updated")
}

// Delete handles DELETE /contacts/:id
// @Summary Delete a contact
// @Tags Contact
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/contacts/{id} [delete]
func (c *ContactController) Delete(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid contact ID")
	}

	if appErr := c.ContactService.Delete(ctx.Request().Context(), id, userID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, nil, "Contact deleted")
}
