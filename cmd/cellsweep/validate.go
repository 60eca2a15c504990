package main

import (
	"fmt"

	"github.com/aretw0/cellsweep/pkg/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check pattern files",
	Long:  `Loads each pattern file and reports the first problem found in it.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			p, err := config.LoadPattern(path)
			if err == nil {
				_, err = p.Grid()
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, p.Name)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d pattern files are invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
