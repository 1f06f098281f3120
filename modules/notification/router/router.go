package router

import (
	"meetease/core/middleware"
	"meetease/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	Controller *controller.NotificationController
}

func NewNotificationRouter(ctrl *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{Controller: ctrl}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	routes := v1.Group("/private/notifications", mw.AuthMiddleware())

	routes.GET("", r.Controller.GetMyNotifications)
	routes.GET("/unread-count", r.Controller.CountUnread)
	routes.PUT("/read", r.Controller.MarkAsRead)
	routes.PUT("/read-all", r.Controller.MarkAllAsRead)
}
