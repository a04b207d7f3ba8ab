package handler

import (
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	ledger service.LedgerService
}

func NewCategoryHandler(ledger service.LedgerService) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Categories())
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.ledger.AddCategory(&category)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": created})
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.ledger.UpdateCategory(id, &category)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": updated})
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.ledger.DeleteCategory(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// GetCategoryStock lists the stock of every product in the category
func (h *CategoryHandler) GetCategoryStock(c *fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}
	if _, err := h.ledger.Category(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.ledger.GetCategoryStock(id))
}
