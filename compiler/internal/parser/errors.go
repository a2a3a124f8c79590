package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/desilang/lox/compiler/internal/diag"
	"github.com/desilang/lox/compiler/internal/lexer"
)

// ErrorKind classifies syntax faults.
type ErrorKind int

const (
	// ErrExpectedToken: a required token (Expected) was missing.
	ErrExpectedToken ErrorKind = iota
	// ErrExpectedExpression: primary matched nothing.
	ErrExpectedExpression
	// ErrTrailingTokens: input continued after a complete expression.
	ErrTrailingTokens
)

func (k ErrorKind) key() string {
	switch k {
	case ErrExpectedToken:
		return "expected_token"
	case ErrExpectedExpression:
		return "expected_expression"
	case ErrTrailingTokens:
		return "trailing_tokens"
	}
	return "unknown"
}

// Error is a syntax fault anchored at the offending token.
type Error struct {
	Kind     ErrorKind
	Tok      lexer.Token
	Expected lexer.TokKind // ErrExpectedToken only
	Msg      string
}

// AtEnd reports whether the fault was hit at end of input.
func (e *Error) AtEnd() bool { return e.Tok.Kind == lexer.TokEOF }

func (e *Error) Error() string {
	if e.AtEnd() {
		return fmt.Sprintf("[line %d] error at end: %s", e.Tok.Line, e.Msg)
	}
	return fmt.Sprintf("[line %d] error at '%s': %s", e.Tok.Line, e.Tok.Lexeme, e.Msg)
}

// Diagnostic converts e for rendering.
func (e *Error) Diagnostic() diag.Diagnostic {
	where := "at end"
	if !e.AtEnd() {
		where = "at '" + e.Tok.Lexeme + "'"
	}
	return diag.Diagnostic{
		Key:  e.Kind.key(),
		Span: diag.At(e.Tok.Line, e.Tok.Col, len(e.Tok.Lexeme)),
		Msg:  e.Msg + " " + where,
	}.Resolve(diag.DomainParser)
}

// ErrorList collects syntax faults from ParseList.
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

// IsIncomplete reports whether err consists only of end-of-input faults,
// that is, more input could complete the expression. Used by the REPL to
// ask for continuation lines.
func IsIncomplete(err error) bool {
	var list ErrorList
	if errors.As(err, &list) {
		if len(list) == 0 {
			return false
		}
		for _, e := range list {
			if !e.AtEnd() {
				return false
			}
		}
		return true
	}
	var pe *Error
	return errors.As(err, &pe) && pe.AtEnd()
}
