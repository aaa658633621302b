package thoughts

import (
	"database/sql"
	"strings"
	"time"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// TodayThoughtAPI returns the thought of the day for the caller's branch.
// Rotation is deterministic: the day of year modulo the number of active
// thoughts, so everyone in a branch sees the same quote all day.
func TodayThoughtAPI(c *fiber.Ctx) error {
	claims := auth.ClaimsFrom(c)

	filters := database.ThoughtFilters{
		Branch:     auth.ScopeBranch(claims, c.Query("branch")),
		ActiveOnly: true,
	}

	thoughts, err := database.GetThoughts(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch thoughts"})
	}
	if len(thoughts) == 0 {
		return c.JSON(fiber.Map{"success": true, "data": nil})
	}

	today := time.Now().YearDay()
	return c.JSON(fiber.Map{"success": true, "data": thoughts[today%len(thoughts)]})
}

func GetThoughtsAPI(c *fiber.Ctx) error {
	claims := auth.ClaimsFrom(c)

	filters := database.ThoughtFilters{
		Branch: auth.ScopeBranch(claims, c.Query("branch")),
	}

	thoughts, err := database.GetThoughts(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch thoughts"})
	}

	return c.JSON(fiber.Map{"success": true, "data": thoughts})
}

func CreateThoughtAPI(c *fiber.Ctx) error {
	type ThoughtRequest struct {
		Quote  string `json:"quote"`
		Author string `json:"author"`
		Branch string `json:"branch"`
	}

	var req ThoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Quote = strings.TrimSpace(req.Quote)
	if req.Quote == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Quote is required"})
	}

	// An admin can only add thoughts for their own branch.
	claims := auth.ClaimsFrom(c)
	branch := req.Branch
	if claims.Role != models.RoleSuperadmin && claims.Branch != nil {
		branch = *claims.Branch
	}
	if branch == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Branch is required"})
	}

	thought := &models.Thought{
		Quote:  req.Quote,
		Author: strings.TrimSpace(req.Author),
		Branch: branch,
	}

	if err := database.CreateThought(config.GetDB(), thought); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create thought"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": thought})
}

func UpdateThoughtAPI(c *fiber.Ctx) error {
	type ThoughtRequest struct {
		Quote    string `json:"quote"`
		Author   string `json:"author"`
		IsActive *bool  `json:"is_active"`
	}

	var req ThoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Quote = strings.TrimSpace(req.Quote)
	if req.Quote == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Quote is required"})
	}

	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	existing, err := database.GetThoughtByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Thought not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch thought"})
	}
	if !auth.InScope(claims, &existing.Branch) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	existing.Quote = req.Quote
	existing.Author = strings.TrimSpace(req.Author)
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := database.UpdateThought(db, existing); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Thought not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update thought"})
	}

	return c.JSON(fiber.Map{"success": true, "data": existing})
}

func DeleteThoughtAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	existing, err := database.GetThoughtByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Thought not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch thought"})
	}
	if !auth.InScope(claims, &existing.Branch) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	if err := database.DeleteThought(db, existing.ID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Thought not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete thought"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Thought deleted successfully"})
}
