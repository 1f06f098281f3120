package router

import (
	"meetease/core/middleware"
	"meetease/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	Controller *controller.CalendarController
}

func NewCalendarRouter(ctrl *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{Controller: ctrl}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/calendar", mw.AuthMiddleware())

	routes.GET("/connections", r.Controller.GetConnections)
	routes.DELETE("/connections/:provider", r.Controller.Disconnect)
	routes.GET("/free-busy", r.Controller.GetFreeBusy)
}
