package handler

import (
	"go-inventory-kardex/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	validator middleware.TokenValidator
}

func NewAuthHandler(validator middleware.TokenValidator) *AuthHandler {
	return &AuthHandler{validator: validator}
}

// ValidateTokenRequest represents the validate token request body
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateToken handles JWT token validation
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req ValidateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if req.Token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Token is required"})
	}

	if h.validator == nil {
		return c.JSON(fiber.Map{"valid": true, "operator": "anonymous"})
	}

	claims, err := h.validator.ValidateToken(req.Token)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"valid":      true,
		"operator":   claims.Subject,
		"expires_at": claims.ExpiresAt,
	})
}
