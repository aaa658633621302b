package policies

import (
	"database/sql"
	"strings"

	"staff-portal/app/config"
	"staff-portal/app/database"
	"staff-portal/app/models"

	"github.com/gofiber/fiber/v2"
)

func GetPoliciesAPI(c *fiber.Ctx) error {
	policies, err := database.GetPolicies(config.GetDB(), c.Query("category"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch policies"})
	}

	return c.JSON(fiber.Map{"success": true, "data": policies})
}

type policyRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Body        string  `json:"body"`
	DocumentURL *string `json:"document_url,omitempty"`
}

func parsePolicyRequest(c *fiber.Ctx) (*models.Policy, string) {
	var req policyRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, "Invalid request body"
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, "Title is required"
	}
	if req.Category == "" {
		req.Category = "general"
	}

	return &models.Policy{
		Title:       req.Title,
		Category:    req.Category,
		Body:        req.Body,
		DocumentURL: req.DocumentURL,
	}, ""
}

func CreatePolicyAPI(c *fiber.Ctx) error {
	policy, errMsg := parsePolicyRequest(c)
	if errMsg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": errMsg})
	}

	if err := database.CreatePolicy(config.GetDB(), policy); err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create policy"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "data": policy})
}

func UpdatePolicyAPI(c *fiber.Ctx) error {
	policy, errMsg := parsePolicyRequest(c)
	if errMsg != "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": errMsg})
	}
	policy.ID = c.Params("id")

	if err := database.UpdatePolicy(config.GetDB(), policy); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Policy not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update policy"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Policy updated successfully"})
}

func DeletePolicyAPI(c *fiber.Ctx) error {
	if err := database.DeletePolicy(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"success": false, "error": "Policy not found"})
		}
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete policy"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Policy deleted successfully"})
}
