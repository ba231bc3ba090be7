package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/lamchun/academy-backend/internal/handlers"
)

func Setup(
	app *fiber.App,
	healthHandler *handlers.HealthHandler,
	schemaHandler *handlers.SchemaHandler,
	videoHandler *handlers.VideoHandler,
	progressHandler *handlers.ProgressHandler,
	forumHandler *handlers.ForumHandler,
	userHandler *handlers.UserHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Academy backend is running"})
	})

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/schema", schemaHandler.Get)

	api.Get("/videos", videoHandler.List)
	api.Post("/videos", videoHandler.Create)

	api.Get("/progress/:user_id", progressHandler.ListForUser)
	api.Post("/progress", progressHandler.Upsert)

	api.Get("/forum/posts", forumHandler.ListPosts)
	api.Post("/forum/posts", forumHandler.CreatePost)

	api.Get("/users", userHandler.List)
	api.Post("/users", userHandler.Create)
}
