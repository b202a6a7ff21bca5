package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ryoufit/ryoufit-backend/internal/handlers"
	"github.com/ryoufit/ryoufit-backend/internal/middleware"
	"github.com/ryoufit/ryoufit-backend/internal/web"
)

func Setup(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	measurementHandler *handlers.MeasurementHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Every dynamic endpoint must tell intermediaries not to cache: the
	// frontend reads back just-written values on the next navigation.
	api := app.Group("/api", middleware.NoCache())

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Users
	api.Get("/users", userHandler.ListUsers)
	api.Post("/users", userHandler.CreateUser)
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpdateUser)
	api.Delete("/users/:id", userHandler.DeleteUser)

	// Per-user measurement history and chart series
	api.Get("/users/:id/measurements", measurementHandler.ListUserMeasurements)
	api.Get("/users/:id/chart", measurementHandler.UserChart)

	// Measurements
	api.Get("/measurements", measurementHandler.ListMeasurements)
	api.Post("/measurements", measurementHandler.CreateMeasurement)
	api.Get("/measurements/:id", measurementHandler.GetMeasurement)
	api.Put("/measurements/:id", measurementHandler.UpdateMeasurement)
	api.Delete("/measurements/:id", measurementHandler.DeleteMeasurement)

	// Browser frontend
	web.Register(app)
}
