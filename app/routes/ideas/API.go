package ideas

import (
	"database/sql"
	"strings"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetIdeasAPI(c *fiber.Ctx) error {
	claims := auth.ClaimsFrom(c)

	ideas, err := database.GetIdeas(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch ideas"})
	}

	return c.JSON(fiber.Map{"success": true, "data": ideas})
}

func CreateIdeaAPI(c *fiber.Ctx) error {
	type IdeaRequest struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}

	var req IdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Body) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and body are required"})
	}

	claims := auth.ClaimsFrom(c)
	idea := &models.Idea{
		UserID: claims.UserID,
		Title:  req.Title,
		Body:   req.Body,
	}

	if err := database.CreateIdea(config.GetDB(), idea); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create idea"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": idea})
}

// DeleteIdeaAPI removes an idea; allowed for its author or the admin tier.
func DeleteIdeaAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	idea, err := database.GetIdeaByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch idea"})
	}

	if idea.UserID != claims.UserID && !auth.Authorize(claims, auth.AdminTier) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	if err := database.DeleteIdea(db, idea.ID); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete idea"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Idea deleted successfully"})
}

func ToggleLikeAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	ideaID := c.Params("id")
	if _, err := database.GetIdeaByID(db, ideaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch idea"})
	}

	liked, err := database.ToggleIdeaLike(db, ideaID, claims.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to toggle like"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"liked": liked}})
}

func GetCommentsAPI(c *fiber.Ctx) error {
	comments, err := database.GetIdeaComments(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch comments"})
	}

	return c.JSON(fiber.Map{"success": true, "data": comments})
}

func CreateCommentAPI(c *fiber.Ctx) error {
	type CommentRequest struct {
		Body string `json:"body"`
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if strings.TrimSpace(req.Body) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Comment body is required"})
	}

	db := config.GetDB()
	ideaID := c.Params("id")
	if _, err := database.GetIdeaByID(db, ideaID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Idea not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch idea"})
	}

	claims := auth.ClaimsFrom(c)
	comment := &models.IdeaComment{
		IdeaID: ideaID,
		UserID: claims.UserID,
		Body:   req.Body,
	}

	if err := database.CreateIdeaComment(db, comment); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create comment"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": comment})
}
