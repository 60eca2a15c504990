package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/cellsweep"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cellsweep",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "cellsweep version %s\n", strings.TrimSpace(cellsweep.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
