package users

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupUsersRoutes sets up the staff directory and admin user management routes
func SetupUsersRoutes(app *fiber.App) {
	api := app.Group("/api/users")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RequireCapability(auth.AdminTier))

	api.Get("/", ListUsersAPI)
	api.Patch("/:id/status", SetUserStatusAPI)
	api.Patch("/:id/role", SetUserRoleAPI)
}
