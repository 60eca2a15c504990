package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/cellsweep"
	"github.com/aretw0/cellsweep/internal/presentation/tui"
	"github.com/aretw0/cellsweep/pkg/observability"
	"github.com/aretw0/cellsweep/pkg/registry"
	"github.com/aretw0/cellsweep/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a pattern for a number of generations",
	Long: `Loads a built-in pattern (or a YAML/JSON pattern file) and prints every generation.
With --columns the frames are buffered and printed side by side at the end.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("pattern")
		file, _ := cmd.Flags().GetString("file")
		generations, _ := cmd.Flags().GetInt("generations")
		interval, _ := cmd.Flags().GetDuration("interval")
		jsonMode, _ := cmd.Flags().GetBool("json")
		columns, _ := cmd.Flags().GetBool("columns")
		color, _ := cmd.Flags().GetBool("color")
		summary, _ := cmd.Flags().GetBool("summary")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		if jsonMode && columns {
			return fmt.Errorf("--json and --columns cannot be used together")
		}

		logger, err := commandLogger(cmd)
		if err != nil {
			return err
		}

		pattern, err := resolvePattern(registry.Builtin(), name, file)
		if err != nil {
			return err
		}
		initial, err := pattern.Grid()
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("generations") && pattern.Generations > 0 {
			generations = pattern.Generations
		}

		sim, err := cellsweep.New(initial,
			cellsweep.WithName(pattern.Name),
			cellsweep.WithLogger(logger),
			cellsweep.WithLifecycleHooks(observability.LoggingHooks(logger)),
		)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		var handler runner.OutputHandler
		switch {
		case jsonMode:
			handler = runner.NewJSONHandler(out)
		case columns:
			handler = runner.NewColumnsHandler(out)
		default:
			var opts []runner.TextHandlerOption
			if color {
				opts = append(opts, runner.WithColor(termenv.ColorProfile()))
			}
			handler = runner.NewTextHandler(out, opts...)
		}

		if !noBanner && !jsonMode {
			tui.PrintBanner(out, cellsweep.Version)
		}

		r := runner.NewRunner(
			runner.WithHandler(handler),
			runner.WithLogger(logger),
			runner.WithGenerations(generations),
			runner.WithInterval(interval),
			runner.WithInitialFrame(),
		)
		res, err := r.Run(context.Background(), sim)
		if err != nil {
			return err
		}

		if summary && !jsonMode {
			md := tui.Summary{
				Pattern:     pattern.Name,
				Height:      initial.Height(),
				Width:       initial.Width(),
				Generations: res.Generations,
				Population:  res.Population,
				Births:      res.Births,
				Deaths:      res.Deaths,
				Stable:      res.Stable,
			}.Markdown()
			rendered, err := tui.NewRenderer()(md)
			if err != nil {
				logger.Warn("summary rendering failed", "error", err)
				rendered = md
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("pattern", "p", "demo", "Built-in pattern ("+strings.Join(registry.Builtin().Names(), ", ")+")")
	runCmd.Flags().StringP("file", "f", "", "Pattern file (.yaml, .yml or .json); overrides --pattern")
	runCmd.Flags().IntP("generations", "n", 10, "Generations to advance (0 runs until interrupted)")
	runCmd.Flags().Duration("interval", 0, "Pause between generations")
	runCmd.Flags().Bool("json", false, "Emit NDJSON frames")
	runCmd.Flags().Bool("columns", false, "Print all generations side by side")
	runCmd.Flags().Bool("color", false, "Colour live cells")
	runCmd.Flags().Bool("summary", false, "Print a run summary at the end")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
}
