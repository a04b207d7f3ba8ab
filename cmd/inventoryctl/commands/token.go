package commands

import (
	"fmt"
	"time"

	"go-inventory-kardex/cmd/inventoryctl/output"
	"go-inventory-kardex/pkg/config"
	"go-inventory-kardex/pkg/jwt"

	"github.com/spf13/cobra"
)

var (
	// Token flags
	tokenTTL time.Duration
)

// tokenCmd issues an operator token for the API
var tokenCmd = &cobra.Command{
	Use:   "token <operator>",
	Short: "Issue an API token signed with JWT_SECRET",
	Long: `Print a bearer token for the API server. The operator name ends up in the
server's request log.

Examples:
  inventoryctl token warehouse-bot
  inventoryctl token alice --ttl 8h`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToken(args[0])
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

func runToken(operator string) error {
	cfg := config.Load()
	signer, err := jwt.NewSigner(cfg.JWTSecret, tokenTTL)
	if err != nil {
		return err
	}

	token, err := signer.GenerateToken(operator)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	if jsonOutput {
		return output.JSON(map[string]string{"operator": operator, "token": token})
	}
	fmt.Fprintln(output.Out, token)
	return nil
}
