package holidays

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

// GetHolidaysAPI lists holidays visible to the caller: their branch's plus
// company-wide ones. A superadmin may request any branch or all.
func GetHolidaysAPI(c *fiber.Ctx) error {
	claims := auth.ClaimsFrom(c)

	from := c.Query("from")
	if from != "" {
		if _, err := time.Parse("2006-01-02", from); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid from date. Use YYYY-MM-DD"})
		}
	}

	filters := database.HolidayFilters{
		Branch: auth.ScopeBranch(claims, c.Query("branch")),
		From:   from,
	}

	holidays, err := database.GetHolidays(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch holidays"})
	}

	return c.JSON(fiber.Map{"success": true, "data": holidays})
}

func CreateHolidayAPI(c *fiber.Ctx) error {
	type HolidayRequest struct {
		Name   string  `json:"name"`
		Date   string  `json:"date"`
		Branch *string `json:"branch,omitempty"` // nil means company-wide
	}

	var req HolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Name is required"})
	}

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
	}

	// An admin can only create holidays for their own branch; only a
	// superadmin can create company-wide or cross-branch holidays.
	claims := auth.ClaimsFrom(c)
	branch := req.Branch
	if claims.Role != models.RoleSuperadmin {
		branch = claims.Branch
	}

	holiday := &models.Holiday{
		Name:   req.Name,
		Day:    day,
		Branch: branch,
	}

	if err := database.CreateHoliday(config.GetDB(), holiday); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create holiday"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": holiday})
}

func DeleteHolidayAPI(c *fiber.Ctx) error {
	if err := database.DeleteHoliday(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Holiday not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete holiday"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Holiday deleted successfully"})
}
