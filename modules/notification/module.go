package notification

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/core/queue"
	"meetease/modules/notification/controller"
	"meetease/modules/notification/repository"
	"meetease/modules/notification/router"
	"meetease/modules/notification/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, q *queue.Client) {
	svc := GetService(db, q)
	ctrl := controller.NewNotificationController(svc)
	router.NewNotificationRouter(ctrl).Setup(e, mw)
}

// GetService exposes the service for booking and event flows.
func GetService(db database.Database, q *queue.Client) *service.NotificationService {
	return service.NewNotificationService(repository.NewNotificationRepository(db), q)
}

// RegisterTasks wires the module's background task handlers onto the worker mux.
func RegisterTasks(mux *asynq.ServeMux) {
	mux.HandleFunc(service.TypeEmailDelivery, service.HandleEmailDeliveryTask)
}
