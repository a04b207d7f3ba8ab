package commands

import (
	"fmt"
	"strconv"

	"go-inventory-kardex/cmd/inventoryctl/output"
	"go-inventory-kardex/internal/model"
	"go-inventory-kardex/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// Report flags
	reportProduct string
	reportMethod  string
	reportStart   string
	reportEnd     string
	showKardex    bool
)

// reportCmd values a product's stock
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Value a product's stock with FIFO, LIFO or weighted average",
	Long: `Compute remaining stock and its cost over an inclusive date window.

Examples:
  inventoryctl report --product HAM-1
  inventoryctl report --product HAM-1 --method lifo --end 2024-06-30
  inventoryctl report --product HAM-1 --kardex          # FIFO running ledger
  inventoryctl report --product HAM-1 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport()
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportProduct, "product", "p", "", "Product id or SKU (required)")
	reportCmd.Flags().StringVarP(&reportMethod, "method", "m", "FIFO", "Costing method: FIFO, LIFO or weighted")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "Window start, YYYY-MM-DD (default: beginning)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "Window end, YYYY-MM-DD, inclusive (default: open)")
	reportCmd.Flags().BoolVar(&showKardex, "kardex", false, "Print the kardex rows (FIFO only)")
	reportCmd.MarkFlagRequired("product")
}

// resolveProduct accepts a product id or a SKU
func resolveProduct(ledger service.LedgerService, ref string) (*model.Product, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return ledger.Product(id)
	}
	for _, p := range ledger.Products() {
		if p.SKU == ref {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", service.ErrProductNotFound, ref)
}

func runReport() error {
	method, err := model.ParseCostingMethod(reportMethod)
	if err != nil {
		return err
	}
	start, end, err := model.ParseWindow(reportStart, reportEnd)
	if err != nil {
		return err
	}

	ledger, err := openLedger()
	if err != nil {
		return err
	}
	product, err := resolveProduct(ledger, reportProduct)
	if err != nil {
		return err
	}

	report := service.NewValuationService(ledger).CalculateInventoryCost(product.ID, method, start, end)
	if jsonOutput {
		return output.JSON(report)
	}

	summary := report.Summary()
	output.Section(fmt.Sprintf("%s (%s) - %s", product.Name, product.SKU, method))
	output.KeyValue("Window", fmt.Sprintf("%s .. %s", start.Format(model.DateFormat), end.Format(model.DateFormat)))
	output.KeyValue("Entries", len(summary.Entries))
	output.KeyValue("Exits", len(summary.Exits))
	output.KeyValue("Remaining stock", summary.RemainingStock)
	output.KeyValue("Total cost", summary.TotalCost.StringFixed(2))
	output.KeyValue("Average cost", summary.AverageCost.StringFixed(4))

	if !showKardex {
		return nil
	}
	fifo, ok := report.(*model.FIFOReport)
	if !ok {
		output.Warning("The kardex is only kept for FIFO")
		return nil
	}

	output.Section("Kardex")
	output.Table(kardexHeaders, kardexRows(fifo.Kardex))
	return nil
}

var kardexHeaders = []string{"Date", "Type", "In qty", "In cost", "Out qty", "Out cost", "Bal qty", "Bal unit", "Bal total"}

func kardexRows(rows []model.KardexRow) [][]string {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		in := []string{"", ""}
		if r.Purchase != nil {
			in = []string{strconv.Itoa(r.Purchase.Quantity), r.Purchase.Total.StringFixed(2)}
		}
		out := []string{"", ""}
		if r.Sale != nil {
			out = []string{strconv.Itoa(r.Sale.Quantity), r.Sale.Total.StringFixed(2)}
			if r.Shortfall > 0 {
				out[0] = fmt.Sprintf("%d (%d short)", r.Sale.Quantity, r.Shortfall)
			}
		}
		table = append(table, []string{
			r.Date.String(), string(r.Type),
			in[0], in[1], out[0], out[1],
			strconv.Itoa(r.Balance.Quantity), r.Balance.UnitCost.StringFixed(4), r.Balance.Total.StringFixed(2),
		})
	}
	return table
}
