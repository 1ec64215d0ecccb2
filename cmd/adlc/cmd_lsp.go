package main

import (
	"github.com/spf13/cobra"

	"github.com/adl-lang/adl/internal/langserver"
)

func newLSPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start a language server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return langserver.New(version).RunStdio()
		},
	}

	return cmd
}
