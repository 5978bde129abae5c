package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "net/http/pprof"

	"github.com/abgdnv/storefront/internal/app"
	"github.com/abgdnv/storefront/internal/config"
	"github.com/abgdnv/storefront/internal/platform/bootstrap"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and the directory over HTTP",
	Long: `Start the REST API on the configured port.

Products live under /api/v1/products and customers under /api/v1/customers.
When pprof is enabled a second listener exposes /debug/pprof.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := bootstrap.NewLogger(cfg.Log.Level, cmd.OutOrStdout())
	slog.SetDefault(logger)
	logger.Debug("Configuration loaded", slog.String("config", cfg.String()))

	deps, err := newDependencies(cfg, logger)
	if err != nil {
		return err
	}
	return serve(cmd.Context(), cfg, deps)
}

// serve runs the HTTP server, and the pprof server when enabled, until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, deps *app.Dependencies) error {
	logger := deps.Logger
	g, gCtx := errgroup.WithContext(ctx)

	httpServer := app.SetupHttpServer(deps, cfg)
	g.Go(func() error {
		logger.Info("HTTP server started", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if cfg.PProf.Enabled {
		pprofServer := app.SetupPprofServer(cfg)
		g.Go(func() error {
			logger.Info("Pprof server listening", slog.String("addr", pprofServer.Addr))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("pprof server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return pprofServer.Shutdown(shutdownCtx)
		})
	} else {
		logger.Info("Pprof server is disabled")
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	logger.Info("Servers stopped gracefully")
	return nil
}
