package availability

import (
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/modules/availability/controller"
	"meetease/modules/availability/repository"
	"meetease/modules/availability/router"
	"meetease/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo)
	ctrl := controller.NewAvailabilityController(svc)
	router.NewAvailabilityRouter(ctrl).Setup(e, mw)
}

// GetService builds an availability service for use by other modules.
func GetService(db database.Database) service.AvailabilityServiceInterface {
	return service.NewAvailabilityService(repository.NewAvailabilityRepository(db))
}

// GetRepository exposes the repository for modules that need raw lookups.
func GetRepository(db database.Database) repository.AvailabilityRepositoryInterface {
	return repository.NewAvailabilityRepository(db)
}
