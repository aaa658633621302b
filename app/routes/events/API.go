package events

import (
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetEventsAPI returns a list of events
func GetEventsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	events, err := database.GetEvents(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch events"})
	}
	return c.JSON(fiber.Map{"success": true, "data": events})
}

// GetEventAPI returns a single event with its image gallery
func GetEventAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	event, err := database.GetEventByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event"})
	}

	images, err := database.GetEventImages(db, event.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event images"})
	}
	event.Images = images

	return c.JSON(fiber.Map{"success": true, "data": event})
}

type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
}

func parseEventRequest(c *fiber.Ctx) (*models.Event, string) {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "Invalid request body"
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, "Title is required"
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return nil, "Invalid event_date format. Use YYYY-MM-DD"
	}

	return &models.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Location:    req.Location,
	}, ""
}

// CreateEventAPI creates a new event
func CreateEventAPI(c *fiber.Ctx) error {
	event, errMsg := parseEventRequest(c)
	if errMsg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": errMsg})
	}
	event.CreatedBy = auth.ClaimsFrom(c).UserID

	if err := database.CreateEvent(config.GetDB(), event); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create event"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": event})
}

// UpdateEventAPI updates an existing event
func UpdateEventAPI(c *fiber.Ctx) error {
	event, errMsg := parseEventRequest(c)
	if errMsg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": errMsg})
	}
	event.ID = c.Params("id")

	if err := database.UpdateEvent(config.GetDB(), event); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update event"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Event updated successfully"})
}

// DeleteEventAPI deletes an event
func DeleteEventAPI(c *fiber.Ctx) error {
	if err := database.DeleteEvent(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete event"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Event deleted successfully"})
}

func GetEventImagesAPI(c *fiber.Ctx) error {
	images, err := database.GetEventImages(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event images"})
	}

	return c.JSON(fiber.Map{"success": true, "data": images})
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadEventImageAPI stores an uploaded image under the upload dir and
// records its relative URL against the event.
func UploadEventImageAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	eventID := c.Params("id")
	if _, err := database.GetEventByID(db, eventID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch event"})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Image file is required"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Unsupported image type"})
	}

	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(config.UploadDir(), filename)); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to store image"})
	}

	image := &models.EventImage{
		EventID:  eventID,
		ImageURL: "/uploads/" + filename,
	}
	if err := database.CreateEventImage(db, image); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save image record"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": image})
}
