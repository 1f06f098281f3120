package router

import (
	"meetease/core/middleware"
	"meetease/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	Controller *controller.AuthController
}

func NewAuthRouter(ctrl *controller.AuthController) *AuthRouter {
	return &AuthRouter{Controller: ctrl}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	public := v1.Group("/public/auth")
	public.POST("/register", r.Controller.Register)
	public.POST("/login", r.Controller.Login)
	public.POST("/refresh", r.Controller.Refresh)
	public.GET("/google/callback", r.Controller.GoogleCallback)

	private := v1.Group("/private/auth", mw.AuthMiddleware())
	private.POST("/logout", r.Controller.Logout)
	private.GET("/profile", r.Controller.GetProfile)
	private.PUT("/profile", r.Controller.UpdateProfile)
	private.POST("/profile/avatar", r.Controller.UploadAvatar)
	private.GET("/google/url", r.Controller.GetGoogleAuthURL)
}
