package ideas

import (
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupIdeasRoutes sets up the ideas board routes
func SetupIdeasRoutes(app *fiber.App) {
	api := app.Group("/api/ideas")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetIdeasAPI)
	api.Post("/", CreateIdeaAPI)
	api.Delete("/:id", DeleteIdeaAPI)

	api.Post("/:id/like", ToggleLikeAPI)
	api.Get("/:id/comments", GetCommentsAPI)
	api.Post("/:id/comments", CreateCommentAPI)
}
