package router

import (
	"meetease/core/middleware"
	"meetease/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	Controller *controller.EventController
}

func NewEventRouter(ctrl *controller.EventController) *EventRouter {
	return &EventRouter{Controller: ctrl}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/events", mw.AuthMiddleware())

	routes.GET("", r.Controller.List)
	routes.GET("/:id", r.Controller.Get)
	routes.DELETE("/:id", r.Controller.Cancel)
}
