package middleware

import (
	"strings"

	"go-inventory-kardex/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// TokenValidator is satisfied by *jwt.Signer
type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

// RequireAuth validates the bearer token and stores the operator name in
// c.Locals("operator"). A nil validator lets every request through.
func RequireAuth(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if validator == nil {
			c.Locals("operator", "anonymous")
			return c.Next()
		}

		// Get Authorization header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("operator", claims.Subject)
		return c.Next()
	}
}

// Operator returns the name set by RequireAuth
func Operator(c *fiber.Ctx) string {
	if name, ok := c.Locals("operator").(string); ok && name != "" {
		return name
	}
	return "system"
}
