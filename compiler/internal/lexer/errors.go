package lexer

import (
	"fmt"
	"strings"

	"github.com/desilang/lox/compiler/internal/diag"
)

// ErrorKind classifies lexical faults.
type ErrorKind int

const (
	ErrInvalidCharacter ErrorKind = iota
	ErrUnterminatedString
	ErrUnterminatedBlockComment
)

func (k ErrorKind) key() string {
	switch k {
	case ErrInvalidCharacter:
		return "invalid_character"
	case ErrUnterminatedString:
		return "unterminated_string"
	case ErrUnterminatedBlockComment:
		return "unterminated_block_comment"
	}
	return "unknown"
}

// Error is a lexical fault. The scanner records it and keeps going; the
// malformed lexeme contributes no token.
type Error struct {
	Kind ErrorKind
	Line int
	Col  int
	Char byte // offending byte, ErrInvalidCharacter only
}

// Unterminated reports whether the fault is a string or block comment that
// ran into end of input.
func (e *Error) Unterminated() bool {
	return e.Kind == ErrUnterminatedString || e.Kind == ErrUnterminatedBlockComment
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidCharacter:
		return fmt.Sprintf("[line %d] error: invalid character %s", e.Line, quoteByte(e.Char))
	case ErrUnterminatedString:
		return fmt.Sprintf("[line %d] error: unterminated string", e.Line)
	case ErrUnterminatedBlockComment:
		return fmt.Sprintf("[line %d] error: unterminated block comment", e.Line)
	}
	return fmt.Sprintf("[line %d] error: lexical fault %d", e.Line, e.Kind)
}

// Diagnostic converts e for rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	width := 1
	msg := ""
	switch e.Kind {
	case ErrInvalidCharacter:
		msg = "invalid character " + quoteByte(e.Char)
	case ErrUnterminatedString:
		msg = "unterminated string"
	case ErrUnterminatedBlockComment:
		msg = "unterminated block comment"
		width = 2
	}
	return diag.Diagnostic{
		Key:  e.Kind.key(),
		Span: diag.At(e.Line, e.Col, width),
		Msg:  msg,
	}.Resolve(diag.DomainLexer)
}

func quoteByte(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return fmt.Sprintf("'%c'", c)
	}
	return fmt.Sprintf("0x%02x", c)
}

// ErrorList collects every lexical fault from one scan.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Err returns nil for an empty list, else the list itself.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Diagnostics converts every fault in l.
func (l ErrorList) Diagnostics() []diag.Diagnostic {
	out := make([]diag.Diagnostic, 0, len(l))
	for _, e := range l {
		out = append(out, e.Diagnostic())
	}
	return out
}
