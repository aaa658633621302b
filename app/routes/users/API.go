package users

import (
	"database/sql"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"
	"staff-portal/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func ListUsersAPI(c *fiber.Ctx) error {
	claims := auth.ClaimsFrom(c)

	filters := database.UserFilters{
		Branch: auth.ScopeBranch(claims, c.Query("branch")),
		Role:   c.Query("role"),
		Search: c.Query("search"),
	}

	users, err := database.ListUsers(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch users"})
	}

	return c.JSON(fiber.Map{"success": true, "data": users})
}

// SetUserStatusAPI toggles the soft active flag. Deactivated accounts keep
// their history but can no longer log in.
func SetUserStatusAPI(c *fiber.Ctx) error {
	type StatusRequest struct {
		IsActive *bool `json:"is_active"`
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil || req.IsActive == nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "is_active is required"})
	}

	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	target, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch user"})
	}
	if !auth.InScope(claims, target.Branch) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}
	if target.ID == claims.UserID && !*req.IsActive {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Cannot deactivate your own account"})
	}

	if err := database.SetUserStatus(db, target.ID, *req.IsActive); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update user status"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User status updated successfully"})
}

func SetUserRoleAPI(c *fiber.Ctx) error {
	type RoleRequest struct {
		Role string `json:"role"`
	}

	var req RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if !models.IsValidRole(req.Role) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid role"})
	}

	db := config.GetDB()
	claims := auth.ClaimsFrom(c)

	// Only a superadmin may grant the superadmin role.
	if req.Role == models.RoleSuperadmin && claims.Role != models.RoleSuperadmin {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	target, err := database.GetUserByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch user"})
	}
	if !auth.InScope(claims, target.Branch) {
		return c.Status(403).JSON(fiber.Map{"success": false, "error": "Insufficient permissions"})
	}

	if err := database.SetUserRole(db, target.ID, req.Role); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update user role"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User role updated successfully"})
}
