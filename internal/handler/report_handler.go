package handler

import (
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	ledger    service.LedgerService
	valuation service.ValuationService
}

func NewReportHandler(ledger service.LedgerService, valuation service.ValuationService) *ReportHandler {
	return &ReportHandler{ledger: ledger, valuation: valuation}
}

// GetProductTransactions lists a product's transactions inside ?start=&end=
func (h *ReportHandler) GetProductTransactions(c *fiber.Ctx) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	start, end, err := parseWindow(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := h.ledger.Product(productID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(h.valuation.GetProductTransactions(productID, start, end))
}

// GetValuation returns the cost report of a product
// Query params: method (FIFO|LIFO|weighted, default FIFO), start, end
func (h *ReportHandler) GetValuation(c *fiber.Ctx) error {
	productID, err := paramUUID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}
	method, err := model.ParseCostingMethod(c.Query("method", string(model.FIFO)))
	if err != nil {
		return respondError(c, err)
	}
	start, end, err := parseWindow(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if _, err := h.ledger.Product(productID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(h.valuation.CalculateInventoryCost(productID, method, start, end))
}
