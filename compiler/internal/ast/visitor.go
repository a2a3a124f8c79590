package ast

import "fmt"

// Visitor has one operation per node variant. Implement it to add a pass
// over the tree (printing, evaluation, resolution) without touching the nodes.
type Visitor[R any] interface {
	VisitBinary(*Binary) (R, error)
	VisitUnary(*Unary) (R, error)
	VisitGrouping(*Grouping) (R, error)
	VisitLiteral(*Literal) (R, error)
}

// Accept dispatches e to the matching method of v. Go methods cannot take
// type parameters, so dispatch over the sealed variant set lives here rather
// than on the nodes.
func Accept[R any](e Expr, v Visitor[R]) (R, error) {
	switch n := e.(type) {
	case *Binary:
		return v.VisitBinary(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	}
	var zero R
	return zero, fmt.Errorf("ast: cannot visit %T", e)
}
