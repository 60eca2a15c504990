package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/cellsweep"
	httpAdapter "github.com/aretw0/cellsweep/pkg/adapters/http"
	"github.com/aretw0/cellsweep/pkg/observability"
	"github.com/aretw0/cellsweep/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Holds one simulation in memory and exposes it as a JSON API over HTTP, with Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		name, _ := cmd.Flags().GetString("pattern")
		file, _ := cmd.Flags().GetString("file")

		logger, err := commandLogger(cmd)
		if err != nil {
			return err
		}

		patterns := registry.Builtin()
		pattern, err := resolvePattern(patterns, name, file)
		if err != nil {
			return err
		}
		initial, err := pattern.Grid()
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		metrics, err := observability.NewMetrics(reg)
		if err != nil {
			return err
		}

		sim, err := cellsweep.New(initial,
			cellsweep.WithName(pattern.Name),
			cellsweep.WithLogger(logger),
			cellsweep.WithLifecycleHooks(observability.Combine(
				metrics.Hooks(),
				observability.LoggingHooks(logger),
			)),
		)
		if err != nil {
			return err
		}

		handler := httpAdapter.NewHandler(sim,
			httpAdapter.WithRegistry(patterns),
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting cellsweep server", "address", srv.Addr, "pattern", pattern.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s\n", pattern.Name, srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cellsweep server stopped gracefully")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "P", "8080", "Port to listen on")
	serveCmd.Flags().StringP("pattern", "p", "glider", "Built-in pattern to start from")
	serveCmd.Flags().StringP("file", "f", "", "Pattern file to start from; overrides --pattern")
}
