package main

import (
	"github.com/dhamidi/labeldecode/lsp"
	"github.com/spf13/cobra"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for label documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			incomplete, err := lsp.ParseSeverity(a.cfg.LSP.IncompleteSeverity)
			if err != nil {
				return err
			}
			server := lsp.NewLSPServer(version, a.registry, incomplete)
			return server.RunStdio()
		},
	}
}
