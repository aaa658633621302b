package policies

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupPoliciesRoutes sets up HR policy routes
func SetupPoliciesRoutes(app *fiber.App) {
	api := app.Group("/api/policies")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetPoliciesAPI)

	api.Post("/", auth.RequireCapability(auth.ContentTier), CreatePolicyAPI)
	api.Put("/:id", auth.RequireCapability(auth.ContentTier), UpdatePolicyAPI)
	api.Delete("/:id", auth.RequireCapability(auth.ContentTier), DeletePolicyAPI)
}
