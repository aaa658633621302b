package main

import (
	"log"
	"os"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/routes/announcements"
	"staff-portal/app/routes/attendance"
	"staff-portal/app/routes/auth"
	"staff-portal/app/routes/events"
	"staff-portal/app/routes/holidays"
	"staff-portal/app/routes/ideas"
	"staff-portal/app/routes/policies"
	"staff-portal/app/routes/thoughts"
	"staff-portal/app/routes/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

// errorHandler renders every unhandled error as the standard JSON envelope
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Uploaded event images are served straight from disk
	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}
	app.Static("/uploads", uploadDir)

	// Routes
	auth.SetupAuthRoutes(app)
	users.SetupUsersRoutes(app)
	attendance.SetupAttendanceRoutes(app)
	announcements.SetupAnnouncementsRoutes(app)
	events.SetupEventsRoutes(app)
	holidays.SetupHolidaysRoutes(app)
	policies.SetupPoliciesRoutes(app)
	ideas.SetupIdeasRoutes(app)
	thoughts.SetupThoughtsRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
