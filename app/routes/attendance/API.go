package attendance

import (
	"strconv"
	"time"

	"staff-portal/app/database"
	"staff-portal/app/routes/auth"
	"staff-portal/app/services"

	"github.com/gofiber/fiber/v2"
)

type remarksRequest struct {
	Remarks string `json:"remarks"`
}

// CheckInAPI opens a session for the caller. Timestamps are always
// server-assigned; a client-supplied time would allow falsified attendance.
func CheckInAPI(svc *services.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req remarksRequest
		// Body is optional; remarks default to empty.
		_ = c.BodyParser(&req)

		claims := auth.ClaimsFrom(c)
		session, err := svc.CheckIn(claims.UserID, req.Remarks)
		if err != nil {
			if err == services.ErrAlreadyActive {
				return c.Status(409).JSON(fiber.Map{"success": false, "error": "Already checked in"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to check in"})
		}

		return c.Status(201).JSON(fiber.Map{
			"success": true,
			"message": "Checked in",
			"data":    session,
		})
	}
}

func CheckOutAPI(svc *services.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req remarksRequest
		_ = c.BodyParser(&req)

		claims := auth.ClaimsFrom(c)
		session, err := svc.CheckOut(claims.UserID, req.Remarks)
		if err != nil {
			if err == services.ErrNoActiveSession {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "No active session to check out of"})
			}
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to check out"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Checked out",
			"data": fiber.Map{
				"session":            session,
				"duration_minutes":   session.DurationMinutes,
				"duration_formatted": services.FormatMinutes(*session.DurationMinutes),
			},
		})
	}
}

// TodayAPI returns the caller's daily status. With an open session the total
// includes live elapsed minutes, so repeated calls move forward.
func TodayAPI(svc *services.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		day := c.Query("date")
		if day != "" {
			if _, err := time.Parse("2006-01-02", day); err != nil {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
			}
		}

		claims := auth.ClaimsFrom(c)
		status, err := svc.DailyStatus(claims.UserID, day)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance"})
		}

		return c.JSON(fiber.Map{"success": true, "data": status})
	}
}

// ListAllAPI is the elevated view across users. The caller's requested
// branch goes through ScopeBranch, so an admin is always pinned to their own
// branch no matter what the query string says.
func ListAllAPI(svc *services.AttendanceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := auth.ClaimsFrom(c)

		date := c.Query("date")
		if date != "" {
			if _, err := time.Parse("2006-01-02", date); err != nil {
				return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
			}
		}

		limit, _ := strconv.Atoi(c.Query("limit", "100"))
		offset, _ := strconv.Atoi(c.Query("offset", "0"))

		filters := database.SessionFilters{
			Branch:     auth.ScopeBranch(claims, c.Query("branch")),
			Date:       date,
			EmployeeID: c.Query("employee_id"),
			NameSearch: c.Query("search"),
			Limit:      limit,
			Offset:     offset,
		}

		sessions, err := svc.ListAll(filters)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance records"})
		}

		return c.JSON(fiber.Map{
			"success": true,
			"data":    sessions,
			"count":   len(sessions),
		})
	}
}
