package commands

import (
	"errors"
	"fmt"
	"os"

	"go-inventory-kardex/internal/repository"
	"go-inventory-kardex/internal/service"
	"go-inventory-kardex/pkg/config"
	"go-inventory-kardex/pkg/database"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dbURL      string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "inventoryctl",
	Short: "Inventory ledger and valuation tool",
	Long: `inventoryctl works directly on the inventory store used by the API server.

It can load or dump the whole ledger as a snapshot document, print stock
levels and compute FIFO, LIFO or weighted-average valuations with the FIFO
kardex, and issue operator tokens for the API.

The store is taken from the same environment as the server (DATABASE_URL or
DB_*, optionally from .env); --db overrides it.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "Database connection URL (defaults to DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// openLedger loads the ledger from the configured store
var openLedger = func() (service.LedgerService, error) {
	cfg := config.Load()
	if dbURL != "" {
		cfg.DatabaseURL = dbURL
	}
	if cfg.Store == config.StoreMemory && dbURL == "" {
		return nil, errors.New("STORE=memory has nothing to work on, pass --db")
	}

	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	ledger := service.NewLedgerService(repository.NewCollectionRepo(db), nil)
	if err := ledger.Load(); err != nil {
		return nil, err
	}
	return ledger, nil
}
