package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akiyanavi/concierge/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, chat *handlers.ChatHandler, suggest *handlers.SuggestHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Chat
	v1.Post("/chat", chat.Turn)
	v1.Get("/suggestions", suggest.List)
}
