package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desilang/lox/compiler/internal/build"
	"github.com/desilang/lox/compiler/internal/lexer"
	"github.com/desilang/lox/compiler/internal/term"
)

/* ---------- lex ---------- */

func newLexCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lex [--format=pretty|ndjson] <file.lox>",
		Short: "Dump the tokens of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "pretty" && format != "ndjson" {
				return fmt.Errorf("--format %q: want pretty or ndjson", format)
			}
			file := args[0]
			src, err := build.ReadSource(file)
			if err != nil {
				return fatal(err)
			}
			if err := build.CheckSource(file, src); err != nil {
				return fatal(err)
			}
			toks, errs := lexer.Scan(src)
			a.logger.Debug("scanned", "file", file, "tokens", len(toks), "faults", len(errs))

			out := cmd.OutOrStdout()
			switch format {
			case "ndjson":
				if err := lexer.WriteNDJSON(out, toks); err != nil {
					return fatal(err)
				}
			default:
				term.Wprintf(out, "%s", lexer.DebugFormat(toks, 0, a.styles(out)))
			}
			if len(errs) > 0 {
				a.report(cmd, errs.Diagnostics(), file, src)
				return errFaults
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty or ndjson")
	return cmd
}
