package thoughts

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupThoughtsRoutes sets up the motivational thought routes
func SetupThoughtsRoutes(app *fiber.App) {
	api := app.Group("/api/thoughts")
	api.Use(auth.AuthMiddleware)

	api.Get("/today", TodayThoughtAPI)

	api.Get("/", auth.RequireCapability(auth.AdminTier), GetThoughtsAPI)
	api.Post("/", auth.RequireCapability(auth.AdminTier), CreateThoughtAPI)
	api.Put("/:id", auth.RequireCapability(auth.AdminTier), UpdateThoughtAPI)
	api.Delete("/:id", auth.RequireCapability(auth.AdminTier), DeleteThoughtAPI)
}
