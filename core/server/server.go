package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"meetease/core/cache"
	"meetease/core/config"
	"meetease/core/constants"
	"meetease/core/database"
	"meetease/core/logger"
	"meetease/core/middleware"
	"meetease/core/queue"
	authModule "meetease/modules/auth"
	availabilityModule "meetease/modules/availability"
	bookingModule "meetease/modules/booking"
	calendarModule "meetease/modules/calendar"
	contactModule "meetease/modules/contact"
	eventModule "meetease/modules/event"
	eventTypeModule "meetease/modules/eventtype"
	notificationModule "meetease/modules/notification"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run wires the application together and serves until interrupted.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c, err := cache.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	q := queue.NewClient(cfg.Redis)
	defer q.Close()

	mux := asynq.NewServeMux()
	notificationModule.RegisterTasks(mux)
	stopWorker := queue.StartWorker(cfg.Redis, mux)
	defer stopWorker()

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = constants.DefaultTimeout
	e.Server.WriteTimeout = constants.DefaultTimeout
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	mw := middleware.NewMiddleware(c)

	authModule.Init(e, db, mw, c)
	availabilityModule.Init(e, db, mw)
	eventTypeModule.Init(e, db, mw)
	contactModule.Init(e, db, mw)
	calendarModule.Init(e, db, mw)
	eventModule.Init(e, db, mw, q)
	notificationModule.Init(e, db, mw, q)
	bookingModule.Init(e, db, q, c)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
			stop()
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}
