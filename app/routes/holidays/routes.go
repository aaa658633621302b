package holidays

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupHolidaysRoutes sets up holidays routes
func SetupHolidaysRoutes(app *fiber.App) {
	api := app.Group("/api/holidays")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetHolidaysAPI)

	api.Post("/", auth.RequireCapability(auth.AdminTier), CreateHolidayAPI)
	api.Delete("/:id", auth.RequireCapability(auth.AdminTier), DeleteHolidayAPI)
}
