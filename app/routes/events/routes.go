package events

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupEventsRoutes sets up events routes
func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/events")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetEventsAPI)
	api.Get("/:id", GetEventAPI)
	api.Get("/:id/images", GetEventImagesAPI)

	api.Post("/", auth.RequireCapability(auth.ContentTier), CreateEventAPI)
	api.Put("/:id", auth.RequireCapability(auth.ContentTier), UpdateEventAPI)
	api.Delete("/:id", auth.RequireCapability(auth.ContentTier), DeleteEventAPI)
	api.Post("/:id/images", auth.RequireCapability(auth.ContentTier), UploadEventImageAPI)
}
