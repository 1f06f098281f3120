package auth

import (
	"meetease/core/cache"
	"meetease/core/config"
	"meetease/core/database"
	"meetease/core/middleware"
	"meetease/core/storage"
	"meetease/modules/auth/controller"
	"meetease/modules/auth/repository"
	"meetease/modules/auth/router"
	"meetease/modules/auth/service"
	calendarModule "meetease/modules/calendar"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, c cache.Cache) {
	repo := repository.NewAuthRepository(db)
	uploader := storage.NewUploader(config.Get().AWS)
	svc := service.NewAuthService(repo, c, calendarModule.GetService(db), uploader)
	ctrl := controller.NewAuthController(svc)
	router.NewAuthRouter(ctrl).Setup(e, mw)
}
