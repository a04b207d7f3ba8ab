package handler

import (
	"log"

	"go-inventory-kardex/internal/middleware"
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	ledger service.LedgerService
}

func NewInventoryHandler(ledger service.LedgerService) *InventoryHandler {
	return &InventoryHandler{ledger: ledger}
}

// productWithStock is a product as listed over HTTP, with its computed stock
type productWithStock struct {
	model.Product
	Stock int `json:"stock"`
}

func (h *InventoryHandler) withStock(products []model.Product) []productWithStock {
	result := make([]productWithStock, 0, len(products))
	for _, p := range products {
		result = append(result, productWithStock{Product: p, Stock: h.ledger.GetProductStock(p.ID)})
	}
	return result
}

// ============ PRODUCTS ============

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	return c.JSON(h.withStock(h.ledger.Products()))
}

func (h *InventoryHandler) GetLowStockProducts(c *fiber.Ctx) error {
	return c.JSON(h.withStock(h.ledger.GetLowStockProducts()))
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	created, err := h.ledger.AddProduct(&product)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": created})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.ledger.UpdateProduct(productID, &product)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.ledger.DeleteProduct(productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *InventoryHandler) GetProductStock(c *fiber.Ctx) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	if _, err := h.ledger.Product(productID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(model.ProductStock{ProductID: productID, Stock: h.ledger.GetProductStock(productID)})
}

// ============ TRANSACTIONS ============

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	return c.JSON(h.ledger.Transactions())
}

func (h *InventoryHandler) GetTransaction(c *fiber.Ctx) error {
	txID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.ledger.Transaction(txID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tx)
}

func (h *InventoryHandler) CreateTransaction(c *fiber.Ctx) error {
	var tx model.Transaction
	if err := c.BodyParser(&tx); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	recorded, err := h.ledger.AddTransaction(&tx)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("Transaction %s (%s %d) recorded by %s", recorded.ID, recorded.Type, recorded.Quantity, middleware.Operator(c))
	return c.Status(201).JSON(fiber.Map{"message": "Transaction recorded", "data": recorded})
}
