package commands

import (
	"strconv"

	"go-inventory-kardex/cmd/inventoryctl/output"
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/spf13/cobra"
)

var (
	// Stock flags
	stockCategory string
)

type stockLine struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"minStock"`
}

// stockCmd lists stock per product
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "List current stock per product",
	Long: `List every product with its current stock and low-stock threshold.

Examples:
  inventoryctl stock
  inventoryctl stock --category Tools`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStock(false)
	},
}

// lowStockCmd lists products at or below their minimum
var lowStockCmd = &cobra.Command{
	Use:   "low-stock",
	Short: "List products at or below their minimum stock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStock(true)
	},
}

func init() {
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(lowStockCmd)

	stockCmd.Flags().StringVarP(&stockCategory, "category", "c", "", "Only products of this category (name or id)")
}

func categoryFilter(ledger service.LedgerService, ref string) (func(model.Product) bool, error) {
	if ref == "" {
		return func(model.Product) bool { return true }, nil
	}
	for _, c := range ledger.Categories() {
		if c.Name == ref || c.ID.String() == ref {
			id := c.ID
			return func(p model.Product) bool { return p.CategoryID == id }, nil
		}
	}
	return nil, service.ErrCategoryNotFound
}

func runStock(lowOnly bool) error {
	ledger, err := openLedger()
	if err != nil {
		return err
	}

	products := ledger.Products()
	keep := func(model.Product) bool { return true }
	if lowOnly {
		products = ledger.GetLowStockProducts()
	} else if keep, err = categoryFilter(ledger, stockCategory); err != nil {
		return err
	}

	lines := make([]stockLine, 0, len(products))
	for _, p := range products {
		if !keep(p) {
			continue
		}
		lines = append(lines, stockLine{SKU: p.SKU, Name: p.Name, Stock: ledger.GetProductStock(p.ID), MinStock: p.MinStock})
	}

	if jsonOutput {
		return output.JSON(lines)
	}
	if len(lines) == 0 {
		if lowOnly {
			output.Success("No product is at or below its minimum stock")
		} else {
			output.Muted("No products")
		}
		return nil
	}

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{l.SKU, l.Name, strconv.Itoa(l.Stock), strconv.Itoa(l.MinStock)})
	}
	output.Table([]string{"SKU", "Name", "Stock", "Min"}, rows)
	return nil
}
