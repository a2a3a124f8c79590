package build

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/desilang/lox/compiler/internal/parser"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestRunPrintsExpression(t *testing.T) {
	path := writeFile(t, "expr.lox", "-123 * (45.67)\n")
	res, err := Run(context.Background(), path, Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Failed() {
		t.Fatalf("unexpected faults: %v", res.Diagnostics())
	}
	got := res.Printed()
	if len(got) != 1 || got[0] != "(* (- 123) (group 45.67))" {
		t.Fatalf("printed = %q", got)
	}
}

func TestRunMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.lox")
	_, err := Run(context.Background(), path, Options{})
	var fe *FileError
	if !errors.As(err, &fe) || fe.Path != path {
		t.Fatalf("want *FileError for %s, got %v", path, err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("FileError should unwrap to ErrNotExist: %v", err)
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	path := writeFile(t, "a.lox", "1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, path, Options{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestInvalidUTF8Rejected(t *testing.T) {
	_, err := RunSource("bad.lox", []byte{'1', '+', 0xff}, Options{})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("want ErrInvalidUTF8, got %v", err)
	}
}

func TestLexicalFaultsDoNotStopParsing(t *testing.T) {
	res, err := RunSource("mixed.lox", []byte("1 @ + (2"), Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.LexErrs) != 1 || len(res.ParseErrs) != 1 {
		t.Fatalf("lex %v, parse %v", res.LexErrs, res.ParseErrs)
	}
	ds := res.Diagnostics()
	if len(ds) != 2 || ds[0].Code != "LEX0001" || ds[1].Code != "PAR0001" {
		t.Fatalf("diagnostics = %+v", ds)
	}
	if !res.Failed() || len(res.Exprs) != 0 {
		t.Fatalf("faulty run kept expressions: %v", res.Printed())
	}
}

func TestModes(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		mode    Mode
		printed []string
		kind    *parser.ErrorKind
	}{
		{"single", "1 + 2", ModeSingle, []string{"(+ 1 2)"}, nil},
		{"single trailing", "1 2", ModeSingle, nil, ptr(parser.ErrTrailingTokens)},
		{"single semicolon", "1;", ModeSingle, nil, ptr(parser.ErrTrailingTokens)},
		{"list", "1; 2 * 3;", ModeList, []string{"1", "(* 2 3)"}, nil},
		{"list fault", "1; (; 3", ModeList, []string{"1", "3"}, ptr(parser.ErrExpectedExpression)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := RunSource(c.name, []byte(c.src), Options{Mode: c.mode})
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got := res.Printed(); strings.Join(got, "|") != strings.Join(c.printed, "|") {
				t.Fatalf("printed %q, want %q", got, c.printed)
			}
			switch {
			case c.kind == nil && len(res.ParseErrs) > 0:
				t.Fatalf("unexpected faults: %v", res.ParseErrs)
			case c.kind != nil && (len(res.ParseErrs) != 1 || res.ParseErrs[0].Kind != *c.kind):
				t.Fatalf("faults %v, want one of kind %d", res.ParseErrs, *c.kind)
			}
		})
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	if _, err := RunSource("x.lox", []byte("1"), Options{Logger: logger}); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"scanned", "parsed", "tokens=2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func ptr[T any](v T) *T { return &v }

func TestIncomplete(t *testing.T) {
	cases := map[string]bool{
		"1 +":       true,
		"(1":        true,
		`"abc`:      true,
		"1 /* open": true,
		"1 + 2":     false,
		"1 )":       false,
		"@ (":       false,
		"(1 @":      false,
	}
	for src, want := range cases {
		res, err := RunSource("repl", []byte(src), Options{Mode: ModeList})
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if got := res.Incomplete(); got != want {
			t.Errorf("Incomplete(%q) = %v, want %v", src, got, want)
		}
	}
}
