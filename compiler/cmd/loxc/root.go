package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/desilang/lox/compiler/internal/config"
	"github.com/desilang/lox/compiler/internal/diag"
	"github.com/desilang/lox/compiler/internal/logging"
	"github.com/desilang/lox/compiler/internal/term"
	"github.com/desilang/lox/compiler/internal/version"
)

// app is the state shared by every subcommand, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfgFile string
	verbose bool
	color   string

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "loxc",
		Short: "Lox front end: scanner, expression parser and AST printer",
		Long: `loxc scans and parses Lox expressions.

Commands:
  lex      dump the tokens of a file
  parse    print the parenthesized form of each expression
  repl     parse expressions interactively
  version  print build information`,
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $LOXC_CONFIG, ./loxc.toml, ./loxc.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log pipeline stages at debug level")
	root.PersistentFlags().StringVar(&a.color, "color", "", "colour output: auto, always or never (default from config)")

	root.AddCommand(
		newLexCmd(a),
		newParseCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var (
		path = a.cfgFile
		err  error
	)
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		a.cfg, path, err = config.Discover()
	}
	if err != nil {
		return err
	}
	if a.color != "" {
		switch a.color {
		case term.ColorAuto, term.ColorAlways, term.ColorNever:
			a.cfg.Output.Color = a.color
		default:
			return fmt.Errorf("--color %q: want auto, always or never", a.color)
		}
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}
	a.logger, err = logging.New(cmd.ErrOrStderr(), a.cfg.Log)
	if err != nil {
		return err
	}
	if path != "" {
		a.logger.Debug("config loaded", "path", path)
	}
	return nil
}

func (a *app) styles(w io.Writer) term.Styles {
	if a.cfg == nil {
		return term.Plain()
	}
	return term.NewStyles(w, a.cfg.Output.Color)
}

// report renders ds to the command's stderr.
func (a *app) report(cmd *cobra.Command, ds []diag.Diagnostic, file string, src []byte) {
	w := cmd.ErrOrStderr()
	diag.RenderAll(w, ds, file, src, a.styles(w))
}
