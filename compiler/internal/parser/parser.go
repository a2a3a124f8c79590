package parser

import (
	"github.com/desilang/lox/compiler/internal/ast"
	"github.com/desilang/lox/compiler/internal/lexer"
)

// Parser is a recursive-descent parser over a scanned token slice. The
// cursor only moves forward, except that synchronize skips ahead after a
// fault.
type Parser struct {
	toks []lexer.Token
	cur  int
}

// New returns a parser over toks. A missing trailing EOF is supplied, so
// any slice (including an empty one) is safe.
func New(toks []lexer.Token) *Parser {
	if n := len(toks); n == 0 || toks[n-1].Kind != lexer.TokEOF {
		eof := lexer.Token{Kind: lexer.TokEOF, Line: 1}
		if n > 0 {
			eof.Line = toks[n-1].Line
		}
		toks = append(toks[:n:n], eof)
	}
	return &Parser{toks: toks}
}

// Parse parses toks as a single expression.
func Parse(toks []lexer.Token) (ast.Expr, error) {
	return New(toks).Parse()
}

// Parse parses one expression starting at the cursor. On the first fault it
// returns a nil Expr and a *Error.
func (p *Parser) Parse() (ast.Expr, error) {
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// AtEnd reports whether only EOF remains.
func (p *Parser) AtEnd() bool { return p.atEnd() }

// Peek returns the current token without consuming it.
func (p *Parser) Peek() lexer.Token { return p.peek() }

// ParseList parses `expression (";" expression)* ";"? EOF`. A fault does not
// end the parse: it is recorded, synchronize skips to the next statement
// boundary and parsing resumes, so one pass reports every independent fault.
func (p *Parser) ParseList() ([]ast.Expr, ErrorList) {
	var (
		exprs []ast.Expr
		errs  ErrorList
	)
	for !p.atEnd() {
		if p.match(lexer.TokSemicolon) {
			continue // empty element
		}
		e, err := p.expression()
		if err != nil {
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		exprs = append(exprs, e)
		if p.atEnd() {
			break
		}
		if _, err := p.consume(lexer.TokSemicolon, "expect ';' between expressions"); err != nil {
			errs = append(errs, err)
			p.synchronize()
		}
	}
	return exprs, errs
}

/*** GRAMMAR ***/

// expression → equality
func (p *Parser) expression() (ast.Expr, *Error) {
	return p.equality()
}

// equality → comparison (("!=" | "==") comparison)*
func (p *Parser) equality() (ast.Expr, *Error) {
	return p.leftAssoc(p.comparison, lexer.TokBangEqual, lexer.TokEqualEqual)
}

// comparison → term (("<" | "<=" | ">" | ">=") term)*
func (p *Parser) comparison() (ast.Expr, *Error) {
	return p.leftAssoc(p.term, lexer.TokGreater, lexer.TokGreaterEqual, lexer.TokLess, lexer.TokLessEqual)
}

// term → factor (("+" | "-") factor)*
func (p *Parser) term() (ast.Expr, *Error) {
	return p.leftAssoc(p.factor, lexer.TokMinus, lexer.TokPlus)
}

// factor → unary (("*" | "/") unary)*
func (p *Parser) factor() (ast.Expr, *Error) {
	return p.leftAssoc(p.unary, lexer.TokSlash, lexer.TokStar)
}

// leftAssoc parses one operand with next, then folds each further
// `op operand` pair into a Binary whose left child is everything so far.
func (p *Parser) leftAssoc(next func() (ast.Expr, *Error), ops ...lexer.TokKind) (ast.Expr, *Error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary → ("!" | "-") unary | primary
func (p *Parser) unary() (ast.Expr, *Error) {
	if p.match(lexer.TokBang, lexer.TokMinus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.primary()
}

// primary → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
func (p *Parser) primary() (ast.Expr, *Error) {
	switch {
	case p.match(lexer.TokFalse):
		return &ast.Literal{Value: false}, nil
	case p.match(lexer.TokTrue):
		return &ast.Literal{Value: true}, nil
	case p.match(lexer.TokNil):
		return &ast.Literal{Value: nil}, nil
	case p.match(lexer.TokNumber, lexer.TokString):
		return &ast.Literal{Value: literalValue(p.previous())}, nil
	case p.match(lexer.TokLeftParen):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.TokRightParen, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil
	}
	return nil, &Error{Kind: ErrExpectedExpression, Tok: p.peek(), Msg: "expect expression"}
}

func literalValue(t lexer.Token) any {
	if t.Lit == nil {
		// Hand-built token streams may omit literals; fall back to the lexeme.
		if t.Kind == lexer.TokString {
			return t.Lexeme
		}
		return nil
	}
	if t.Lit.Kind == lexer.LitNumber {
		return t.Lit.Num
	}
	return t.Lit.Str
}

/*** PRIMITIVES ***/

func (p *Parser) peek() lexer.Token     { return p.toks[p.cur] }
func (p *Parser) previous() lexer.Token { return p.toks[p.cur-1] }
func (p *Parser) atEnd() bool           { return p.peek().Kind == lexer.TokEOF }

// advance consumes and returns the current token; at EOF it is a no-op that
// returns EOF.
func (p *Parser) advance() lexer.Token {
	if p.atEnd() {
		return p.peek()
	}
	p.cur++
	return p.previous()
}

func (p *Parser) check(k lexer.TokKind) bool {
	return !p.atEnd() && p.peek().Kind == k
}

func (p *Parser) match(kinds ...lexer.TokKind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(k lexer.TokKind, msg string) (lexer.Token, *Error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return p.peek(), &Error{Kind: ErrExpectedToken, Tok: p.peek(), Expected: k, Msg: msg}
}

// statementStart lists kinds that begin a statement; synchronize stops in
// front of them.
var statementStart = map[lexer.TokKind]bool{
	lexer.TokClass:  true,
	lexer.TokFun:    true,
	lexer.TokVar:    true,
	lexer.TokFor:    true,
	lexer.TokIf:     true,
	lexer.TokWhile:  true,
	lexer.TokPrint:  true,
	lexer.TokReturn: true,
}

// synchronize discards tokens until just after a ';' or just before a
// statement keyword, or EOF.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == lexer.TokSemicolon {
			return
		}
		if statementStart[p.peek().Kind] {
			return
		}
		p.advance()
	}
}
