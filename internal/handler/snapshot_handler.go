package handler

import (
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SnapshotHandler struct {
	ledger service.LedgerService
}

func NewSnapshotHandler(ledger service.LedgerService) *SnapshotHandler {
	return &SnapshotHandler{ledger: ledger}
}

// Export returns the whole ledger as one document
func (h *SnapshotHandler) Export(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Export())
}

// Import replaces the whole ledger. Any problem in the document rejects it.
func (h *SnapshotHandler) Import(c *fiber.Ctx) error {
	var snapshot model.Snapshot
	if err := c.BodyParser(&snapshot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.ledger.Import(&snapshot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message": "Snapshot imported",
		"data": fiber.Map{
			"categories":   len(snapshot.Categories),
			"products":     len(snapshot.Products),
			"transactions": len(snapshot.Transactions),
		},
	})
}
