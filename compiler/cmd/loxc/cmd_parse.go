package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/desilang/lox/compiler/internal/ast"
	"github.com/desilang/lox/compiler/internal/build"
	"github.com/desilang/lox/compiler/internal/lexer"
	"github.com/desilang/lox/compiler/internal/term"
)

/* ---------- parse ---------- */

type parseFlags struct {
	list   bool
	tokens string
	stats  bool
}

func newParseCmd(a *app) *cobra.Command {
	var f parseFlags
	cmd := &cobra.Command{
		Use:   "parse [--list] [--tokens=ndjson] [--stats] <file>",
		Short: "Print the parenthesized form of each expression",
		Long: `parse reads one expression (or, with --list, a ';'-separated list) and
prints each in fully parenthesized prefix form:

  -123 * (45.67)   =>   (* (- 123) (group 45.67))

With --tokens=ndjson the file holds a token stream as written by
'loxc lex --format=ndjson' instead of source text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.tokens != "" && f.tokens != "ndjson" {
				return fmt.Errorf("--tokens %q: only ndjson is supported", f.tokens)
			}
			return a.parse(cmd, args[0], f)
		},
	}
	cmd.Flags().BoolVar(&f.list, "list", false, "parse a ';'-separated expression list, recovering from faults")
	cmd.Flags().StringVar(&f.tokens, "tokens", "", "read a pre-lexed token stream (ndjson)")
	cmd.Flags().BoolVar(&f.stats, "stats", false, "print node count and depth after each expression")
	return cmd
}

func (a *app) parse(cmd *cobra.Command, file string, f parseFlags) error {
	mode := build.ModeSingle
	if f.list {
		mode = build.ModeList
	}

	var res *build.Result
	if f.tokens == "ndjson" {
		data, err := build.ReadSource(file)
		if err != nil {
			return fatal(err)
		}
		toks, err := lexer.ReadNDJSON(bytes.NewReader(data))
		if err != nil {
			return fatal(fmt.Errorf("%s: %w", file, err))
		}
		res = &build.Result{Name: file, Tokens: toks}
		build.ParseTokens(res, mode)
	} else {
		var err error
		res, err = build.Run(cmd.Context(), file, build.Options{Mode: mode, Logger: a.logger})
		if err != nil {
			return fatal(err)
		}
	}

	out := cmd.OutOrStdout()
	for _, e := range res.Exprs {
		term.Wprintln(out, ast.Print(e))
		if f.stats {
			nodes, depth := ast.Stats(e)
			term.Wprintf(out, "// nodes=%d depth=%d\n", nodes, depth)
		}
	}
	if res.Failed() {
		a.report(cmd, res.Diagnostics(), file, res.Source)
		return errFaults
	}
	return nil
}
