package eventtype

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/modules/eventtype/controller"
	"meetease/modules/eventtype/repository"
	"meetease/modules/eventtype/router"
	"meetease/modules/eventtype/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event-type module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventTypeRepository(db)
	svc := service.NewEventTypeService(repo)
	ctrl := controller.NewEventTypeController(svc)
	router.NewEventTypeRouter(ctrl).Setup(e, mw)
}

// GetRepository exposes the repository for modules that resolve booking slugs.
func GetRepository(db database.Database) repository.EventTypeRepositoryInterface {
	return repository.NewEventTypeRepository(db)
}
