package announcements

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAnnouncementsRoutes sets up announcements routes
func SetupAnnouncementsRoutes(app *fiber.App) {
	api := app.Group("/api/announcements")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAnnouncementsAPI)

	api.Post("/", auth.RequireCapability(auth.ContentTier), CreateAnnouncementAPI)
	api.Put("/:id", auth.RequireCapability(auth.ContentTier), UpdateAnnouncementAPI)
	api.Delete("/:id", auth.RequireCapability(auth.ContentTier), DeleteAnnouncementAPI)
}
