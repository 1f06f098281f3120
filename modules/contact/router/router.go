package router

import (
	"meetease/core/middleware"
	"meetease/modules/contact/controller"

	"github.com/labstack/echo/v4"
)

type ContactRouter struct {
	Controller *controller.ContactController
}

func NewContactRouter(ctrl *controller.ContactController) *ContactRouter {
	return &ContactRouter{Controller: ctrl}
}

func (r *ContactRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/contacts", mw.AuthMiddleware())

	routes.GET("", r.Controller.List)
	routes.GET("/:id", r.Controller.Get)
	routes.PUT("/:id", r.Controller.Update)
	routes.DELETE("/:id", r.Controller.Delete)
}
