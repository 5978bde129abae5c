// Package cli defines the storefront command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abgdnv/storefront/internal/app"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/console"
	"github.com/abgdnv/storefront/internal/platform/bootstrap"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

var configFile string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Manage the product catalog and the customer directory",
	Long: `Storefront keeps a product catalog and a customer directory in memory.

Run without a subcommand to open the interactive menu, or use "serve"
to expose the same operations over HTTP.`,
	SilenceUsage: true,
	RunE:         runConsole,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "path to the yaml config file")
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// stdout belongs to the menu
	logger := bootstrap.NewLogger(cfg.Log.Level, cmd.ErrOrStderr())
	deps, err := newDependencies(cfg, logger)
	if err != nil {
		return err
	}

	c := console.New(deps.ProductService, deps.CustomerService, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	if err := c.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newDependencies builds the services and loads the sample data when enabled.
func newDependencies(cfg *config.Config, logger *slog.Logger) (*app.Dependencies, error) {
	deps := app.SetupDependencies(logger)
	if !cfg.Seed.Enabled {
		return deps, nil
	}
	if err := app.Seed(deps); err != nil {
		return nil, fmt.Errorf("failed to load sample data: %w", err)
	}
	return deps, nil
}
