package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/desilang/lox/compiler/internal/ast"
	"github.com/desilang/lox/compiler/internal/build"
	"github.com/desilang/lox/compiler/internal/diag"
	"github.com/desilang/lox/compiler/internal/lexer"
	"github.com/desilang/lox/compiler/internal/term"
	"github.com/desilang/lox/compiler/internal/version"
)

/* ---------- repl ---------- */

const historyFile = ".loxc_history"

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse expressions interactively",
		Long: `repl reads expressions line by line and prints their parenthesized form.
Input that ends mid-expression continues on the next line.

Commands:
  :tokens  toggle the token dump
  :quit    exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return a.repl(cmd) },
	}
}

func (a *app) repl(cmd *cobra.Command) error {
	histPath := a.cfg.REPL.HistoryFile
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		} else {
			a.logger.Warn("history not saved", "path", histPath, "err", err)
		}
	}()

	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()
	s := &session{
		out:       out,
		errw:      errw,
		outStyles: a.styles(out),
		errStyles: a.styles(errw),
		logger:    a.logger,
	}
	term.Wprintf(out, "%s (type :quit to exit)\n", version.String())

	ctx := cmd.Context()
	for ctx.Err() == nil {
		code, ok := readInput(ln, a.cfg.REPL.Prompt, a.cfg.REPL.ContinuePrompt)
		if !ok {
			term.Wprintln(out)
			break
		}
		if strings.TrimSpace(code) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if s.eval(code) {
			break
		}
	}
	return nil
}

// prompter is the part of *liner.State the input loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// readInput reads lines until they form input that is either complete or
// broken in a way more lines cannot fix. It returns false at end of input.
// An aborted prompt (Ctrl-C) discards the pending lines.
func readInput(p prompter, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		pr := prompt
		if b.Len() > 0 {
			pr = cont
		}
		line, err := p.Prompt(pr)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		res, err := build.RunSource("<repl>", []byte(src), build.Options{Mode: build.ModeList})
		if err != nil || !res.Incomplete() {
			return src, true
		}
	}
}

// session evaluates REPL inputs.
type session struct {
	out, errw            io.Writer
	outStyles, errStyles term.Styles
	logger               *log.Logger

	tokens bool // dump tokens before the parse
	n      int  // inputs evaluated so far
}

// eval handles one complete input and reports whether the loop should stop.
func (s *session) eval(code string) (quit bool) {
	if cmd := strings.TrimSpace(code); strings.HasPrefix(cmd, ":") {
		switch strings.ToLower(cmd) {
		case ":quit", ":q", ":exit":
			return true
		case ":tokens":
			s.tokens = !s.tokens
			term.Wprintf(s.out, "token dump %s\n", onOff(s.tokens))
		default:
			term.Wprintln(s.out, "unknown command. Type :tokens or :quit.")
		}
		return false
	}

	s.n++
	name := "<repl:" + strconv.Itoa(s.n) + ">"
	res, err := build.RunSource(name, []byte(code), build.Options{Mode: build.ModeList, Logger: s.logger})
	if err != nil {
		term.Wprintf(s.errw, "%s\n", term.Paint(s.errStyles.Error, err.Error()))
		return false
	}
	if s.tokens {
		term.Wprintf(s.out, "%s", lexer.DebugFormat(res.Tokens, 0, s.outStyles))
	}
	for _, e := range res.Exprs {
		term.Wprintln(s.out, ast.Print(e))
	}
	if res.Failed() {
		diag.RenderAll(s.errw, res.Diagnostics(), name, res.Source, s.errStyles)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
