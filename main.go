package main

import (
	"meetease/core/logger"
	"meetease/core/server"

	_ "meetease/docs" // Swagger docs
)

// @title MeetEase API
// @version 1.0
// @description Backend API for MeetEase, a meeting scheduling service.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@meetease.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
