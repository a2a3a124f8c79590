package ast

import (
	"fmt"
	"strconv"
	"strings"
)

/*** PRINTER (fully parenthesized prefix form) ***/

// Printer renders expressions as s-expressions:
//
//	-123 * (45.67)  =>  (* (- 123) (group 45.67))
type Printer struct{}

var _ Visitor[string] = Printer{}

// Print renders e. A nil e renders as "<nil>".
func (p Printer) Print(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	s, err := Accept[string](e, p)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}

// Print renders e with a zero Printer.
func Print(e Expr) string { return Printer{}.Print(e) }

func (p Printer) VisitBinary(b *Binary) (string, error) {
	return p.parenthesize(b.Op.Lexeme, b.Left, b.Right)
}

func (p Printer) VisitUnary(u *Unary) (string, error) {
	return p.parenthesize(u.Op.Lexeme, u.Right)
}

func (p Printer) VisitGrouping(g *Grouping) (string, error) {
	return p.parenthesize("group", g.Inner)
}

func (p Printer) VisitLiteral(l *Literal) (string, error) {
	return LiteralText(l.Value), nil
}

func (p Printer) parenthesize(name string, exprs ...Expr) (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		s, err := Accept[string](e, p)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(')')
	return b.String(), nil
}

// LiteralText is the canonical text of a literal value: nil, true/false,
// the shortest decimal form of a number (no exponent), or raw string text.
func LiteralText(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
