package router

import (
	"meetease/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/public/booking")

	routes.GET("/:slug", r.Controller.GetBookingPage)
	routes.GET("/:slug/slots", r.Controller.GetSlots)
	routes.POST("/:slug/schedule", r.Controller.Schedule)

	// Short link used on shared booking pages.
	e.GET("/p/:slug", r.Controller.GetBookingPage)
}
