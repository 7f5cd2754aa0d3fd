// Package cmd provides the CLI commands for quotectl.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	portssvc "github.com/SscSPs/quote_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/quote_pricing_app/internal/core/services"
	"github.com/SscSPs/quote_pricing_app/internal/platform/config"
	"github.com/SscSPs/quote_pricing_app/internal/repositories/cached"
	"github.com/SscSPs/quote_pricing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/quote_pricing_app/pkg/database"
	"github.com/spf13/cobra"
)

var (
	databaseURL string
	verbose     bool
)

// serviceFactory builds the quote service the commands run against.
// The returned func releases its resources.
type serviceFactory func(ctx context.Context) (portssvc.QuoteSvcFacade, func(), error)

var newQuoteService serviceFactory = storeQuoteService

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quotectl",
	Short: "Price quotes from the command line",
	Long: `quotectl computes sale quotes with the same pricing pipeline as the
quote service, reading products, supplier quotes, overrides and exchange
rates straight from the database configured by PGSQL_URL.

Examples:
  quotectl quote --sku SKU-001 --qty 10
  quotectl quote --sku SKU-001 --qty 100 --region EU --currency CNY
  quotectl batch --file items.json`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "db-url", "", "database URL (defaults to PGSQL_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(batchCmd)
}

func storeQuoteService(ctx context.Context) (portssvc.QuoteSvcFacade, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if databaseURL != "" {
		cfg.DatabaseURL = databaseURL
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return nil, nil, err
	}

	repos := cached.NewRepositoryProvider(pgsql.NewStore(pool), cfg.CacheTTL)
	container := services.NewServiceContainer(cfg, repos, nil)
	return container.Quote, pool.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
