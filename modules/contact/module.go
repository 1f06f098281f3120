package contact

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/modules/contact/controller"
	"meetease/modules/contact/repository"
	"meetease/modules/contact/router"
	"meetease/modules/contact/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the contact module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewContactRepository(db)
	svc := service.NewContactService(repo)
	ctrl := controller.NewContactController(svc)
	router.NewContactRouter(ctrl).Setup(e, mw)
}

// GetService exposes the service so the booking flow can record invitees.
func GetService(db database.Database) service.ContactServiceInterface {
	return service.NewContactService(repository.NewContactRepository(db))
}
