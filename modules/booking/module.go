package booking

import (
	"meetease/core/cache"
	"meetease/core/database"
	"meetease/core/queue"
	authRepo "meetease/modules/auth/repository"
	availabilityModule "meetease/modules/availability"
	"meetease/modules/booking/controller"
	"meetease/modules/booking/router"
	"meetease/modules/booking/service"
	calendarModule "meetease/modules/calendar"
	contactModule "meetease/modules/contact"
	eventModule "meetease/modules/event"
	eventTypeModule "meetease/modules/eventtype"
	notificationModule "meetease/modules/notification"

	"github.com/labstack/echo/v4"
)

// Init initializes the public booking module and registers routes.
func Init(e *echo.Echo, db database.Database, q *queue.Client, c cache.Cache) {
	svc := service.NewBookingService(
		eventTypeModule.GetRepository(db),
		availabilityModule.GetRepository(db),
		eventModule.GetRepository(db),
		authRepo.NewAuthRepository(db),
		contactModule.GetService(db),
		calendarModule.GetService(db),
		notificationModule.GetService(db, q),
		c,
	)
	ctrl := controller.NewBookingController(svc)
	router.NewBookingRouter(ctrl).Setup(e)
}
