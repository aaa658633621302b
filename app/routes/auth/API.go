package auth

import (
	"database/sql"
	"strings"
	"time"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email and password are required"})
	}

	user, err := database.GetUserByEmail(config.GetDB(), req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	if !user.IsActive {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Account is inactive"})
	}

	now := time.Now()
	if err := database.UpdateLastLogin(config.GetDB(), user.ID, now); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}
	user.LastLoginAt = &now

	token, err := GenerateJWT(user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data": fiber.Map{
			"token": token,
			"user":  user,
		},
	})
}

func RegisterAPI(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Email        string  `json:"email"`
		Password     string  `json:"password"`
		FirstName    string  `json:"first_name"`
		LastName     string  `json:"last_name"`
		Branch       string  `json:"branch"`
		EmployeeCode *string `json:"employee_code,omitempty"`
		Phone        *string `json:"phone,omitempty"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Branch = strings.TrimSpace(req.Branch)

	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "A valid email is required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}
	if req.FirstName == "" || req.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "First and last name are required"})
	}
	if req.Branch == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Branch is required"})
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	if req.EmployeeCode != nil && strings.TrimSpace(*req.EmployeeCode) == "" {
		req.EmployeeCode = nil
	}

	user := &models.User{
		Email:        req.Email,
		Password:     hashedPassword,
		EmployeeCode: req.EmployeeCode,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         models.RoleEmployee,
		Branch:       &req.Branch,
	}

	if err := database.CreateUser(config.GetDB(), user); err != nil {
		if database.IsUniqueViolation(err) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "Email or employee code already registered"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create user"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful",
		"data":    user,
	})
}

func MeAPI(c *fiber.Ctx) error {
	claims := ClaimsFrom(c)

	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "User not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

// LogoutAPI exists for client symmetry; tokens have no server-side
// revocation list, logout is the client discarding its token.
func LogoutAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "message": "Logged out"})
}

func ChangePasswordAPI(c *fiber.Ctx) error {
	type ChangePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if len(req.NewPassword) < 8 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Password must be at least 8 characters"})
	}

	claims := ClaimsFrom(c)
	user, err := database.GetUserByID(config.GetDB(), claims.UserID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database error"})
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Current password is incorrect"})
	}

	hashedPassword, err := HashPassword(req.NewPassword)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to hash password"})
	}

	if err := database.UpdateUserPassword(config.GetDB(), user.ID, hashedPassword); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}
