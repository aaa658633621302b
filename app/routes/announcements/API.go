package announcements

import (
	"database/sql"
	"strings"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func GetAnnouncementsAPI(c *fiber.Ctx) error {
	activeOnly := c.Query("active", "true") != "false"

	announcements, err := database.GetAnnouncements(config.GetDB(), activeOnly)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch announcements"})
	}

	return c.JSON(fiber.Map{"success": true, "data": announcements})
}

func CreateAnnouncementAPI(c *fiber.Ctx) error {
	type AnnouncementRequest struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || strings.TrimSpace(req.Body) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and body are required"})
	}

	claims := auth.ClaimsFrom(c)
	announcement := &models.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: claims.UserID,
	}

	if err := database.CreateAnnouncement(config.GetDB(), announcement); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create announcement"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": announcement})
}

func UpdateAnnouncementAPI(c *fiber.Ctx) error {
	type AnnouncementRequest struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		IsActive *bool  `json:"is_active,omitempty"`
	}

	var req AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	announcement := &models.Announcement{
		ID:       c.Params("id"),
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		IsActive: true,
	}
	if req.IsActive != nil {
		announcement.IsActive = *req.IsActive
	}
	if announcement.Title == "" || strings.TrimSpace(announcement.Body) == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and body are required"})
	}

	if err := database.UpdateAnnouncement(config.GetDB(), announcement); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Announcement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update announcement"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Announcement updated successfully"})
}

func DeleteAnnouncementAPI(c *fiber.Ctx) error {
	if err := database.DeleteAnnouncement(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Announcement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete announcement"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Announcement deleted successfully"})
}
