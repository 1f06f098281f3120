package router

import (
	"meetease/core/middleware"
	"meetease/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

type AvailabilityRouter struct {
	Controller *controller.AvailabilityController
}

func NewAvailabilityRouter(ctrl *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{Controller: ctrl}
}

func (r *AvailabilityRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/availabilities", mw.AuthMiddleware())

	routes.PUT("", r.Controller.Upsert)
	routes.GET("", r.Controller.List)
	routes.DELETE("/:day", r.Controller.Delete)
}
