package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/cellsweep/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellsweep",
	Short: "cellsweep runs Conway's Game of Life on a torus",
	Long: `cellsweep advances a toroidal Game of Life grid one generation at a time.
Every cell is computed by a suspendable routine that asks the driver for its
neighbours and announces its next state.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

// commandLogger builds the application logger from the persistent --log-level flag.
func commandLogger(cmd *cobra.Command) (*slog.Logger, error) {
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)
	slog.SetDefault(logger)
	return logger, nil
}
