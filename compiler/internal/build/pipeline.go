package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/desilang/lox/compiler/internal/ast"
	"github.com/desilang/lox/compiler/internal/diag"
	"github.com/desilang/lox/compiler/internal/lexer"
	"github.com/desilang/lox/compiler/internal/parser"
)

// ErrInvalidUTF8 rejects sources that are not valid UTF-8 before scanning.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// FileError is a fatal failure to read a source file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return fmt.Sprintf("read %s: %v", e.Path, e.Err) }
func (e *FileError) Unwrap() error { return e.Err }

// ReadSource loads path. Any I/O failure is returned as *FileError.
func ReadSource(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return data, nil
}

// Mode selects what a source must contain.
type Mode int

const (
	// ModeSingle: exactly one expression; anything after it is a fault.
	ModeSingle Mode = iota
	// ModeList: a ';'-separated expression list with fault recovery.
	ModeList
)

// Options tune a pipeline run. The zero value parses a single expression
// and logs nothing.
type Options struct {
	Mode   Mode
	Logger *log.Logger
}

// Result holds everything one run produced. Exprs holds only expressions
// that parsed without a fault.
type Result struct {
	Name      string
	Source    []byte
	Tokens    []lexer.Token
	Exprs     []ast.Expr
	LexErrs   lexer.ErrorList
	ParseErrs parser.ErrorList
}

// Failed reports whether any lexical or syntax fault occurred.
func (r *Result) Failed() bool { return len(r.LexErrs) > 0 || len(r.ParseErrs) > 0 }

// Printed renders every expression in parenthesized prefix form.
func (r *Result) Printed() []string {
	out := make([]string, 0, len(r.Exprs))
	for _, e := range r.Exprs {
		out = append(out, ast.Print(e))
	}
	return out
}

// Incomplete reports whether every fault in r was caused by input ending
// too early, so that appending more lines could still succeed.
func (r *Result) Incomplete() bool {
	if !r.Failed() {
		return false
	}
	for _, e := range r.LexErrs {
		if !e.Unterminated() {
			return false
		}
	}
	return len(r.ParseErrs) == 0 || parser.IsIncomplete(r.ParseErrs)
}

// Diagnostics merges lexical and syntax faults in source order.
func (r *Result) Diagnostics() diag.List {
	ds := diag.List(r.LexErrs.Diagnostics())
	ds = append(ds, r.ParseErrs.Diagnostics()...)
	ds.Sort()
	return ds
}

// Run reads path and runs the front end over it. The returned error is
// non-nil only for fatal problems (file, encoding, cancellation); faults in
// the source are reported through Result.
func Run(ctx context.Context, path string, opts Options) (*Result, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return runStages(ctx, path, src, opts)
}

// RunSource runs the front end over an in-memory source.
func RunSource(name string, src []byte, opts Options) (*Result, error) {
	return runStages(context.Background(), name, src, opts)
}

// CheckSource rejects src before scanning if it is not valid UTF-8.
func CheckSource(name string, src []byte) error {
	if !utf8.Valid(src) {
		return fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}
	return nil
}

func runStages(ctx context.Context, name string, src []byte, opts Options) (*Result, error) {
	if err := CheckSource(name, src); err != nil {
		return nil, err
	}
	res := &Result{Name: name, Source: src}

	start := time.Now()
	res.Tokens, res.LexErrs = lexer.Scan(src)
	debug(opts.Logger, "scanned", "file", name, "tokens", len(res.Tokens),
		"faults", len(res.LexErrs), "took", time.Since(start))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	ParseTokens(res, opts.Mode)
	debug(opts.Logger, "parsed", "file", name, "exprs", len(res.Exprs),
		"faults", len(res.ParseErrs), "took", time.Since(start))
	return res, nil
}

// ParseTokens parses res.Tokens into res.Exprs and res.ParseErrs. The CLI
// uses it directly for pre-lexed NDJSON token streams.
func ParseTokens(res *Result, mode Mode) {
	p := parser.New(res.Tokens)
	if mode == ModeList {
		res.Exprs, res.ParseErrs = p.ParseList()
		return
	}
	e, err := p.Parse()
	if err != nil {
		var pe *parser.Error
		if errors.As(err, &pe) {
			res.ParseErrs = append(res.ParseErrs, pe)
		}
		return
	}
	if !p.AtEnd() {
		res.ParseErrs = append(res.ParseErrs, &parser.Error{
			Kind: parser.ErrTrailingTokens,
			Tok:  p.Peek(),
			Msg:  "expect end of expression",
		})
		return
	}
	res.Exprs = []ast.Expr{e}
}

func debug(l *log.Logger, msg string, kv ...any) {
	if l != nil {
		l.Debug(msg, kv...)
	}
}
