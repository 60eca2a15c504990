package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/cellsweep/pkg/registry"
	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.Builtin()
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range reg.Names() {
			p, err := reg.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%dx%d\t%s\n", p.Name, p.Height, p.Width, p.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}
