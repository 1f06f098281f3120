package event

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/core/queue"
	authRepo "meetease/modules/auth/repository"
	calendarModule "meetease/modules/calendar"
	"meetease/modules/event/controller"
	"meetease/modules/event/repository"
	"meetease/modules/event/router"
	"meetease/modules/event/service"
	notificationModule "meetease/modules/notification"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, q *queue.Client) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(
		repo,
		authRepo.NewAuthRepository(db),
		calendarModule.GetService(db),
		notificationModule.GetService(db, q),
	)
	ctrl := controller.NewEventController(svc)
	router.NewEventRouter(ctrl).Setup(e, mw)
}

// GetRepository exposes the repository for the booking flow.
func GetRepository(db database.Database) repository.EventRepositoryInterface {
	return repository.NewEventRepository(db)
}
