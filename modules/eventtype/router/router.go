package router

import (
	"meetease/core/middleware"
	"meetease/modules/eventtype/controller"

	"github.com/labstack/echo/v4"
)

type EventTypeRouter struct {
	Controller *controller.EventTypeController
}

func NewEventTypeRouter(ctrl *controller.EventTypeController) *EventTypeRouter {
	return &EventTypeRouter{Controller: ctrl}
}

func (r *EventTypeRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/event-types", mw.AuthMiddleware())

	routes.POST("", r.Controller.Create)
	routes.GET("", r.Controller.List)
	routes.GET("/:id", r.Controller.Get)
	routes.PUT("/:id", r.Controller.Update)
	routes.DELETE("/:id", r.Controller.Delete)
}
