package lexer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desilang/lox/compiler/internal/term"
)

func TestNDJSONRoundTrip(t *testing.T) {
	toks, errs := Scan([]byte("(12.5 + \"hi\") != name"))
	if len(errs) != 0 {
		t.Fatalf("errors: %v", errs)
	}
	var buf bytes.Buffer
	if err := WriteNDJSON(&buf, toks); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), `{"kind":"NUMBER","text":"12.5","line":1,"col":2,"num":12.5}`) {
		t.Fatalf("unexpected NUMBER row in:\n%s", buf.String())
	}
	back, err := ReadNDJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != len(toks) {
		t.Fatalf("got %d tokens back, want %d", len(back), len(toks))
	}
	for i := range toks {
		a, b := toks[i], back[i]
		if a.Kind != b.Kind || a.Lexeme != b.Lexeme || a.Line != b.Line || a.Col != b.Col {
			t.Fatalf("token %d: %v != %v", i, a, b)
		}
		if (a.Lit == nil) != (b.Lit == nil) || (a.Lit != nil && *a.Lit != *b.Lit) {
			t.Fatalf("token %d literal: %v != %v", i, a.Lit, b.Lit)
		}
	}
}

func TestReadNDJSONSuppliesEOF(t *testing.T) {
	raw := "\ufeff{\"kind\":\"TRUE\",\"text\":\"true\",\"line\":3,\"col\":1}\n\n"
	toks, err := ReadNDJSON(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != TokTrue || toks[1].Kind != TokEOF || toks[1].Line != 3 {
		t.Fatalf("got %v", toks)
	}
}

func TestReadNDJSONRejectsBadRows(t *testing.T) {
	cases := map[string]string{
		"not json":      "{nope}\n",
		"unknown kind":  `{"kind":"WAT","text":"?","line":1,"col":1}` + "\n",
		"number no num": `{"kind":"NUMBER","text":"1","line":1,"col":1}` + "\n",
		"string no str": `{"kind":"STRING","text":"\"\"","line":1,"col":1}` + "\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadNDJSON(strings.NewReader(raw)); err == nil || !strings.Contains(err.Error(), "ndjson line 1") {
				t.Fatalf("want line-numbered error, got %v", err)
			}
		})
	}
}

func TestDebugFormat(t *testing.T) {
	toks, _ := Scan([]byte("x = 1"))
	out := DebugFormat(toks, 0, term.Plain())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 4 lines, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "1:1  IDENTIFIER") || !strings.HasSuffix(lines[0], "'x'") {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "'1'  1") {
		t.Fatalf("number line should show value: %q", lines[2])
	}
	if lines[3] != "1:6  EOF" {
		t.Fatalf("EOF line = %q", lines[3])
	}
	if got := DebugFormat(toks, 1, term.Plain()); strings.Count(got, "\n") != 1 {
		t.Fatalf("limit ignored: %q", got)
	}
}
