package diag

import (
	"bytes"
	"testing"

	"github.com/desilang/lox/compiler/internal/term"
)

func TestCatalogLookup(t *testing.T) {
	cases := []struct {
		domain, key, id string
	}{
		{DomainLexer, "invalid_character", "LEX0001"},
		{DomainLexer, "unterminated_string", "LEX0002"},
		{DomainLexer, "unterminated_block_comment", "LEX0003"},
		{DomainParser, "expected_token", "PAR0001"},
		{DomainParser, "expected_expression", "PAR0002"},
		{DomainParser, "trailing_tokens", "PAR0003"},
	}
	for _, c := range cases {
		ce, ok := Lookup(c.domain, c.key)
		if !ok || ce.ID != c.id {
			t.Fatalf("Lookup(%s, %s) = %+v, %v; want %s", c.domain, c.key, ce, ok, c.id)
		}
	}
	if _, ok := Lookup("codegen", "x"); ok {
		t.Fatal("unknown domain resolved")
	}
}

func TestResolveKeepsExplicitFields(t *testing.T) {
	d := Diagnostic{Key: "unterminated_string", Help: "custom"}.Resolve(DomainLexer)
	if d.Code != "LEX0002" || d.Help != "custom" || d.Severity != SevError {
		t.Fatalf("resolved = %+v", d)
	}
	d = Diagnostic{Key: "no_such_key", Msg: "m"}.Resolve(DomainParser)
	if d.Code != "" || d.Help != "" {
		t.Fatalf("unknown key filled in: %+v", d)
	}
}

func TestErrorString(t *testing.T) {
	cases := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Msg: "m"}, "m"},
		{Diagnostic{Span: Span{Start: Pos{3, 0}}, Msg: "m"}, "3: m"},
		{Diagnostic{Span: At(3, 7, 1), Msg: "m"}, "3:7: m"},
	}
	for _, c := range cases {
		if got := c.d.Error(); got != c.want {
			t.Fatalf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestListSortIsStable(t *testing.T) {
	l := List{
		{Span: At(2, 1, 1), Msg: "c"},
		{Span: At(1, 5, 1), Msg: "b"},
		{Span: At(1, 5, 1), Msg: "b2"},
		{Span: At(1, 1, 1), Msg: "a"},
	}
	l.Sort()
	var got string
	for _, d := range l {
		got += d.Msg + " "
	}
	if got != "a b b2 c " {
		t.Fatalf("order = %q", got)
	}
	if List(nil).Err() != nil || l.Err() == nil {
		t.Fatal("Err() mismatch")
	}
}

func TestRenderWithSource(t *testing.T) {
	src := []byte("1 +\nvar @ x\n")
	d := Diagnostic{Key: "invalid_character", Span: At(2, 5, 1), Msg: "invalid character '@'"}.Resolve(DomainLexer)
	var buf bytes.Buffer
	Render(&buf, d, "demo.lox", src, term.Plain())
	want := "error[LEX0001]: invalid character '@'\n" +
		" --> demo.lox:2:5\n" +
		" 2 | var @ x\n" +
		"   |     ^ " + d.Help + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderWideSpan(t *testing.T) {
	var buf bytes.Buffer
	d := Diagnostic{Span: At(1, 3, 3), Msg: "m"}
	Render(&buf, d, "f", []byte("a bcd e"), term.Plain())
	want := "error: m\n --> f:1:3\n 1 | a bcd e\n   |   ^~~\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	d := Diagnostic{Key: "expected_expression", Span: At(4, 1, 1), Msg: "expect expression at end"}.Resolve(DomainParser)
	RenderAll(&buf, []Diagnostic{d, d}, "toks.ndjson", nil, term.Plain())
	one := "error[PAR0002]: expect expression at end\n --> toks.ndjson:4:1\nhelp: " + d.Help + "\n"
	if got := buf.String(); got != one+"\n"+one {
		t.Fatalf("got:\n%s", got)
	}
}
