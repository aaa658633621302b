package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI)
	api.Post("/register", RegisterAPI)

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
	api.Post("/logout", LogoutAPI)
	api.Post("/change-password", ChangePasswordAPI)
}

const claimsKey = "claims"

// ClaimsFrom returns the verified claims AuthMiddleware stored for this
// request. Only reachable behind AuthMiddleware, so the assertion is safe.
func ClaimsFrom(c *fiber.Ctx) *Claims {
	return c.Locals(claimsKey).(*Claims)
}

// AuthMiddleware verifies the bearer token and attaches the decoded Claims
// to the request. Handlers read the one Claims value instead of loose
// role/branch fields.
func AuthMiddleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Missing bearer token"})
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		if err == ErrTokenExpired {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Token expired"})
		}
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid token"})
	}

	c.Locals(claimsKey, claims)
	return c.Next()
}

// RequireCapability gates a route group on the policy evaluator. Must be
// mounted after AuthMiddleware.
func RequireCapability(cap Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !Authorize(ClaimsFrom(c), cap) {
			return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
		}
		return c.Next()
	}
}
