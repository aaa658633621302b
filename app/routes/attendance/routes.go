package attendance

import (
	"staff-portal/app/config"
	"staff-portal/app/routes/auth"
	"staff-portal/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up attendance routes
func SetupAttendanceRoutes(app *fiber.App) {
	svc := services.NewAttendanceService(config.GetDB())

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/check-in", CheckInAPI(svc))
	api.Post("/check-out", CheckOutAPI(svc))
	api.Get("/today", TodayAPI(svc))

	api.Get("/all", auth.RequireCapability(auth.ElevatedTier), ListAllAPI(svc))
}
