package ast

import "github.com/desilang/lox/compiler/internal/lexer"

/*** NODES ***/

// Expr is the closed set of expression nodes: *Binary, *Unary, *Grouping and
// *Literal. Trees are built bottom-up by the parser and never mutated; each
// node owns its children.
type Expr interface {
	expr()
}

/*** EXPRESSIONS ***/

type Binary struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (*Binary) expr() {}

type Unary struct {
	Op    lexer.Token
	Right Expr
}

func (*Unary) expr() {}

type Grouping struct {
	Inner Expr
}

func (*Grouping) expr() {}

// Literal holds nil, a bool, a float64 or a string.
type Literal struct {
	Value any
}

func (*Literal) expr() {}

// Inspect walks e in pre-order, calling fn for each node. If fn returns
// false the node's children are skipped.
func Inspect(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	switch n := e.(type) {
	case *Binary:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case *Unary:
		Inspect(n.Right, fn)
	case *Grouping:
		Inspect(n.Inner, fn)
	}
}

// Stats reports the node count and maximum depth of e (a leaf has depth 1).
func Stats(e Expr) (nodes, depth int) {
	Inspect(e, func(Expr) bool {
		nodes++
		return true
	})
	return nodes, depthOf(e)
}

func depthOf(e Expr) int {
	switch n := e.(type) {
	case *Binary:
		return 1 + max(depthOf(n.Left), depthOf(n.Right))
	case *Unary:
		return 1 + depthOf(n.Right)
	case *Grouping:
		return 1 + depthOf(n.Inner)
	case nil:
		return 0
	}
	return 1
}
