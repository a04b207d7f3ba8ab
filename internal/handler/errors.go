package handler

import (
	"errors"
	"log"
	"time"

	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// respondError maps ledger errors to HTTP status codes
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case service.IsNotFound(err):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrReferentialConflict):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case service.IsInputError(err), errors.Is(err, model.ErrUnknownMethod):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("Error: %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// Helper untuk parse UUID dari path param
func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// parseWindow reads ?start= and ?end=
func parseWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	return model.ParseWindow(c.Query("start"), c.Query("end"))
}
