package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/lsys"
	httpAdapter "github.com/aretw0/lsys/internal/adapters/http"
	"github.com/aretw0/lsys/internal/cli"
	"github.com/aretw0/lsys/internal/metrics"
	"github.com/aretw0/lsys/internal/presentation/tui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves the configured L-system over HTTP (/render.svg, /expand, /summary, /graph) with Prometheus metrics on /metrics.
Expansion is capped at 1048576 symbols unless --max-symbols is set (0 removes the cap).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.ResolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := cli.NewLogger(cmd)
			if err != nil {
				return err
			}
			port, _ := cmd.Flags().GetString("port")

			reg := prometheus.NewRegistry()
			collector := metrics.New(reg)

			opts := []lsys.Option{
				lsys.WithLogger(logger),
				lsys.WithLifecycleHooks(collector.Hooks()),
			}
			if cmd.Flags().Changed(cli.FlagMaxSymbols) {
				maxSymbols, _ := cmd.Flags().GetInt(cli.FlagMaxSymbols)
				opts = append(opts, lsys.WithMaxSymbols(maxSymbols))
			}

			handler := httpAdapter.NewHandler(cfg, reg, logger, opts...)
			srv := &http.Server{
				Addr:    ":" + port,
				Handler: handler,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				if cli.IsTerminal(cmd.OutOrStdout()) {
					tui.PrintBanner(cmd.OutOrStdout())
				}
				logger.Info("starting server", "addr", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			select {
			case err := <-serverErrors:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("server error: %w", err)

			case <-ctx.Done():
				logger.Info("shutting down")

				// Give outstanding requests a deadline for completion.
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(shutdownCtx); err != nil {
					logger.Warn("graceful shutdown did not complete", "error", err)
					return srv.Close()
				}
				return nil
			}
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	return cmd
}
