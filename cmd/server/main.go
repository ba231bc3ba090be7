package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lamchun/academy-backend/internal/config"
	"github.com/lamchun/academy-backend/internal/dto"
	"github.com/lamchun/academy-backend/internal/handlers"
	"github.com/lamchun/academy-backend/internal/logging"
	"github.com/lamchun/academy-backend/internal/middleware"
	"github.com/lamchun/academy-backend/internal/routes"
	"github.com/lamchun/academy-backend/internal/services"
	"github.com/lamchun/academy-backend/internal/store"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	cfg := config.Load()

	// Document store. A missing or failing connection does not abort the
	// process: the server keeps serving and every store operation reports
	// the failure instead.
	var st store.Store = store.NewUnavailable()
	var mongoStore *store.Mongo
	if !cfg.StoreConfigured() {
		slog.Warn("DATABASE_URL or DATABASE_NAME not set, store unavailable")
	} else {
		var err error
		mongoStore, err = store.Connect(context.Background(), cfg)
		if err != nil {
			slog.Error("store connection failed", "error", err)
		} else {
			st = mongoStore
		}
	}

	// Store log handler (ERROR+ async batch) and retention cleanup, only
	// when the store is actually reachable.
	var storeLogHandler *logging.StoreHandler
	cleanupDone := make(chan struct{})
	if mongoStore != nil {
		storeLogHandler = logging.NewStoreHandler(st)
		slog.SetDefault(slog.New(logging.NewMultiHandler(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
			storeLogHandler,
		)))
		logging.StartCleanup(st, cleanupDone)
	}

	// Services
	videoService := services.NewVideoService(st)
	progressService := services.NewProgressService(st)
	forumService := services.NewForumService(st)
	userService := services.NewUserService(st)

	// Handlers
	healthHandler := handlers.NewHealthHandler(cfg, st)
	schemaHandler := handlers.NewSchemaHandler()
	videoHandler := handlers.NewVideoHandler(videoService)
	progressHandler := handlers.NewProgressHandler(progressService)
	forumHandler := handlers.NewForumHandler(forumService)
	userHandler := handlers.NewUserHandler(userService)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	if cfg.SentryDSN != "" {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, healthHandler, schemaHandler, videoHandler, progressHandler, forumHandler, userHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	if storeLogHandler != nil {
		storeLogHandler.Stop()
	}
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if mongoStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := mongoStore.Close(ctx); err != nil {
			slog.Error("store close error", "error", err)
		}
		cancel()
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
