package main

import (
	"github.com/spf13/cobra"

	"github.com/desilang/lox/compiler/internal/term"
	"github.com/desilang/lox/compiler/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			term.Wprintf(cmd.OutOrStdout(), "%s", version.Long())
			return nil
		},
	}
}
