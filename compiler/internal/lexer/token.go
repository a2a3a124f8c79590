package lexer

import (
	"fmt"
	"strconv"
)

// TokKind enumerates token kinds produced by the scanner.
type TokKind int

const (
	// Single-character punctuation
	TokLeftParen  TokKind = iota // (
	TokRightParen                // )
	TokLeftBrace                 // {
	TokRightBrace                // }
	TokComma                     // ,
	TokDot                       // .
	TokMinus                     // -
	TokPlus                      // +
	TokSemicolon                 // ;
	TokSlash                     // /
	TokStar                      // *

	// One or two character operators
	TokBang         // !
	TokBangEqual    // !=
	TokEqual        // =
	TokEqualEqual   // ==
	TokGreater      // >
	TokGreaterEqual // >=
	TokLess         // <
	TokLessEqual    // <=

	// Literals/identifiers
	TokIdent
	TokString
	TokNumber

	// Keywords
	TokAnd
	TokClass
	TokElse
	TokFalse
	TokFun
	TokFor
	TokIf
	TokNil
	TokOr
	TokPrint
	TokReturn
	TokSuper
	TokThis
	TokTrue
	TokVar
	TokWhile

	// Special
	TokEOF
)

var kindNames = [...]string{
	TokLeftParen:    "LEFT_PAREN",
	TokRightParen:   "RIGHT_PAREN",
	TokLeftBrace:    "LEFT_BRACE",
	TokRightBrace:   "RIGHT_BRACE",
	TokComma:        "COMMA",
	TokDot:          "DOT",
	TokMinus:        "MINUS",
	TokPlus:         "PLUS",
	TokSemicolon:    "SEMICOLON",
	TokSlash:        "SLASH",
	TokStar:         "STAR",
	TokBang:         "BANG",
	TokBangEqual:    "BANG_EQUAL",
	TokEqual:        "EQUAL",
	TokEqualEqual:   "EQUAL_EQUAL",
	TokGreater:      "GREATER",
	TokGreaterEqual: "GREATER_EQUAL",
	TokLess:         "LESS",
	TokLessEqual:    "LESS_EQUAL",
	TokIdent:        "IDENTIFIER",
	TokString:       "STRING",
	TokNumber:       "NUMBER",
	TokAnd:          "AND",
	TokClass:        "CLASS",
	TokElse:         "ELSE",
	TokFalse:        "FALSE",
	TokFun:          "FUN",
	TokFor:          "FOR",
	TokIf:           "IF",
	TokNil:          "NIL",
	TokOr:           "OR",
	TokPrint:        "PRINT",
	TokReturn:       "RETURN",
	TokSuper:        "SUPER",
	TokThis:         "THIS",
	TokTrue:         "TRUE",
	TokVar:          "VAR",
	TokWhile:        "WHILE",
	TokEOF:          "EOF",
}

// String returns the stable upper-case name of k, e.g. "BANG_EQUAL".
func (k TokKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "TokKind(" + strconv.Itoa(int(k)) + ")"
}

var kindsByName = func() map[string]TokKind {
	m := make(map[string]TokKind, len(kindNames))
	for k, name := range kindNames {
		m[name] = TokKind(k)
	}
	return m
}()

// KindByName is the inverse of TokKind.String.
func KindByName(name string) (TokKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// keywords maps reserved words to their kinds. Anything else shaped like an
// identifier is TokIdent.
var keywords = map[string]TokKind{
	"and":    TokAnd,
	"class":  TokClass,
	"else":   TokElse,
	"false":  TokFalse,
	"fun":    TokFun,
	"for":    TokFor,
	"if":     TokIf,
	"nil":    TokNil,
	"or":     TokOr,
	"print":  TokPrint,
	"return": TokReturn,
	"super":  TokSuper,
	"this":   TokThis,
	"true":   TokTrue,
	"var":    TokVar,
	"while":  TokWhile,
}

// keywordKind maps identifiers to keyword tokens.
func keywordKind(s string) (TokKind, bool) {
	k, ok := keywords[s]
	return k, ok
}

// LitKind tags the payload of a Literal.
type LitKind uint8

const (
	LitIdent LitKind = iota
	LitString
	LitNumber
)

// Literal is the value carried by identifier, string and number tokens.
// Str is set for LitIdent and LitString, Num for LitNumber.
type Literal struct {
	Kind LitKind
	Str  string
	Num  float64
}

func (l Literal) String() string {
	if l.Kind == LitNumber {
		return strconv.FormatFloat(l.Num, 'f', -1, 64)
	}
	return l.Str
}

// Token is a single lexeme with source position. Lit is nil for tokens that
// carry no value.
type Token struct {
	Kind   TokKind
	Lexeme string
	Lit    *Literal
	Line   int
	Col    int
}

func (t Token) String() string {
	if t.Lit == nil {
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme, t.Lit)
}
