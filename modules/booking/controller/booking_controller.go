package controller

import (
	"meetease/core/controller"
	"meetease/core/errors"
	"meetease/modules/booking/dto"
	"meetease/modules/booking/service"

	"github.com/labstack/echo/v4"
)

// BookingController serves the public booking flow. None of these routes
// require authentication.
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// GetBookingPage handles GET /booking/:slug
// @Summary Get public booking page metadata
// @Tags Booking
// @Produce json
// @Param slug path string true "Booking page slug"
// @Success 200 {object} dto.BookingPageResponse
// @Failure 404 {object} errors.AppError
// @Router /public/booking/{slug} [get]
func (c *BookingController) GetBookingPage(ctx echo.Context) error {
	slug := ctx.Param("slug")
	if slug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Slug is required")
	}

	result, appErr := c.BookingService.GetBookingPage(ctx.Request().Context(), slug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetSlots handles GET /booking/:slug/slots
// @Summary List bookable slots for a date
// @Tags Booking
// @Produce json
// @Param slug path string true "Booking page slug"
// @Param date query string true "Target date (YYYY-MM-DD)"
// @Param timezone query string false "IANA timezone for display"
// @Success 200 {object} dto.SlotListResponse
// @Failure 400 {object} errors.AppError
// @Failure 502 {object} errors.AppError
// @Router /public/booking/{slug}/slots [get]
func (c *BookingController) GetSlots(ctx echo.Context) error {
	slug := ctx.Param("slug")
	date := ctx.QueryParam("date")
	if slug == "" || date == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Slug and date are required")
	}

	result, appErr := c.BookingService.GetSlots(ctx.Request().Context(), slug, date, ctx.QueryParam("timezone"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// Schedule handles POST /booking/:slug/schedule
// @Summary Book a slot
// @Tags Booking
// @Accept json
// @Produce json
// @Param slug path string true "Booking page slug"
// @Param request body dto.ScheduleBookingRequest true "Booking details"
// @Success 200 {object} dto.BookingConfirmationResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /public/booking/{slug}/schedule [post]
func (c *BookingController) Schedule(ctx echo.Context) error {
	slug := ctx.Param("slug")
	if slug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Slug is required")
	}

	var req dto.ScheduleBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Schedule(ctx.Request().Context(), slug, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking confirmed")
}
