package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/desilang/lox/compiler/internal/term"
)

/* ---------- main ---------- */

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command tree and maps the outcome to an exit status:
// 0 ok, 1 faults in the input, 2 usage or setup problems.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			term.Wprintf(stderr, "loxc: %v\n", ee.err)
		}
		return ee.code
	}
	term.Wprintf(stderr, "loxc: %v\n", err)
	term.Wprintln(stderr, "run 'loxc --help' for usage")
	return 2
}

// exitError carries an exit status out of a command. A nil err means the
// command already reported the problem.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status " + strconv.Itoa(e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// errFaults reports that diagnostics were already rendered.
var errFaults = &exitError{code: 1}

// fatal wraps a problem with the input (unreadable file, bad encoding).
func fatal(err error) error { return &exitError{code: 1, err: err} }
