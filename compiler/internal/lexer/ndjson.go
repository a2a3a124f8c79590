package lexer

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/desilang/lox/compiler/internal/term"
)

// Row is the NDJSON schema for one token.
// Example rows:
//
//	{"kind":"NUMBER","text":"123","line":1,"col":2,"num":123}
//	{"kind":"STRING","text":"\"hi\"","line":1,"col":9,"str":"hi"}
//	{"kind":"EOF","text":"","line":1,"col":13}
type Row struct {
	Kind string   `json:"kind"`
	Text string   `json:"text"`
	Line int      `json:"line"`
	Col  int      `json:"col"`
	Str  *string  `json:"str,omitempty"`
	Num  *float64 `json:"num,omitempty"`
}

func rowOf(t Token) Row {
	r := Row{Kind: t.Kind.String(), Text: t.Lexeme, Line: t.Line, Col: t.Col}
	if t.Lit != nil {
		switch t.Lit.Kind {
		case LitNumber:
			n := t.Lit.Num
			r.Num = &n
		default:
			s := t.Lit.Str
			r.Str = &s
		}
	}
	return r
}

func (r Row) token() (Token, error) {
	kind, ok := KindByName(r.Kind)
	if !ok {
		return Token{}, fmt.Errorf("unknown token kind %q", r.Kind)
	}
	t := Token{Kind: kind, Lexeme: r.Text, Line: r.Line, Col: r.Col}
	switch kind {
	case TokNumber:
		if r.Num == nil {
			return Token{}, fmt.Errorf("NUMBER row without \"num\"")
		}
		t.Lit = &Literal{Kind: LitNumber, Num: *r.Num}
	case TokString, TokIdent:
		if r.Str == nil {
			return Token{}, fmt.Errorf("%s row without \"str\"", r.Kind)
		}
		lk := LitString
		if kind == TokIdent {
			lk = LitIdent
		}
		t.Lit = &Literal{Kind: lk, Str: *r.Str}
	}
	return t, nil
}

// WriteNDJSON writes one JSON object per token.
func WriteNDJSON(w io.Writer, toks []Token) error {
	enc := json.NewEncoder(w)
	for _, t := range toks {
		if err := enc.Encode(rowOf(t)); err != nil {
			return err
		}
	}
	return nil
}

// ReadNDJSON reads tokens written by WriteNDJSON. Unlike the scanner it is
// strict: a malformed row is an error naming its line. A missing trailing EOF
// row is supplied.
func ReadNDJSON(r io.Reader) ([]Token, error) {
	var toks []Token

	sc := bufio.NewScanner(r)
	// Long string literals make long rows: 64 KiB initial, up to 8 MiB.
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := strings.TrimSpace(sc.Text())
		if lineNo == 1 {
			raw = strings.TrimPrefix(raw, "\ufeff")
		}
		if raw == "" {
			continue
		}
		var row Row
		if err := json.Unmarshal([]byte(raw), &row); err != nil {
			return nil, fmt.Errorf("ndjson line %d: %w", lineNo, err)
		}
		t, err := row.token()
		if err != nil {
			return nil, fmt.Errorf("ndjson line %d: %w", lineNo, err)
		}
		toks = append(toks, t)
		if t.Kind == TokEOF {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n := len(toks); n == 0 || toks[n-1].Kind != TokEOF {
		eof := Token{Kind: TokEOF, Line: 1}
		if n > 0 {
			eof.Line = toks[n-1].Line
		}
		toks = append(toks, eof)
	}
	return toks, nil
}

// DebugFormat returns a readable dump, one token per line:
// "line:col  KIND  'text'". limit <= 0 prints everything.
func DebugFormat(toks []Token, limit int, st term.Styles) string {
	var b strings.Builder
	n := len(toks)
	if limit > 0 && limit < n {
		n = limit
	}
	for _, t := range toks[:n] {
		pos := fmt.Sprintf("%d:%d", t.Line, t.Col)
		kind := fmt.Sprintf("%-13s", t.Kind)
		if t.Lexeme == "" {
			term.Bprintf(&b, "%s  %s\n", term.Paint(st.Faint, pos), term.Paint(st.Kind, t.Kind.String()))
			continue
		}
		text := "'" + term.OneLine(term.Clip(t.Lexeme, 40)) + "'"
		if t.Lit != nil && t.Kind != TokIdent {
			text += "  " + term.Paint(st.Faint, t.Lit.String())
		}
		term.Bprintf(&b, "%s  %s  %s\n", term.Paint(st.Faint, pos), term.Paint(st.Kind, kind), text)
	}
	return b.String()
}
