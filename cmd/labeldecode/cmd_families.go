package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFamiliesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List the known component families and their grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range a.registry.Families() {
				fmt.Fprintf(out, "%s\t%s\n", f.Name(), strings.Join(f.Grammars(), ", "))
			}
			return nil
		},
	}
}
