package calendar

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/modules/calendar/controller"
	"meetease/modules/calendar/repository"
	"meetease/modules/calendar/router"
	"meetease/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewCalendarRepository(db)
	svc := service.NewCalendarService(repo)
	ctrl := controller.NewCalendarController(svc)
	router.NewCalendarRouter(ctrl).Setup(e, mw)
}

// GetService exposes the service for booking and event flows.
func GetService(db database.Database) service.CalendarService {
	return service.NewCalendarService(repository.NewCalendarRepository(db))
}
