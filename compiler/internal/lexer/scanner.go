package lexer

import "strconv"

// Scanner turns a source buffer into tokens. It holds the whole buffer; there
// is no streaming. A Scanner is single-use and not safe for concurrent use.
type Scanner struct {
	src  []byte
	toks []Token
	errs ErrorList

	start   int // first byte of the current lexeme
	current int // next unread byte
	line    int

	lineStart int // offset of the first byte on the current line
	startLine int
	startCol  int
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan tokenizes src. The result always ends with exactly one TokEOF, even
// when faults were found.
func Scan(src []byte) ([]Token, ErrorList) {
	return NewScanner(src).ScanTokens()
}

// ScanTokens consumes the whole buffer.
func (s *Scanner) ScanTokens() ([]Token, ErrorList) {
	for !s.atEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startCol = s.current - s.lineStart + 1
		s.scanToken()
	}
	s.toks = append(s.toks, Token{
		Kind: TokEOF,
		Line: s.line,
		Col:  s.current - s.lineStart + 1,
	})
	return s.toks, s.errs
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.add(TokLeftParen, nil)
	case ')':
		s.add(TokRightParen, nil)
	case '{':
		s.add(TokLeftBrace, nil)
	case '}':
		s.add(TokRightBrace, nil)
	case ',':
		s.add(TokComma, nil)
	case '.':
		s.add(TokDot, nil)
	case '-':
		s.add(TokMinus, nil)
	case '+':
		s.add(TokPlus, nil)
	case ';':
		s.add(TokSemicolon, nil)
	case '*':
		s.add(TokStar, nil)
	case '!':
		s.add(s.either('=', TokBangEqual, TokBang), nil)
	case '=':
		s.add(s.either('=', TokEqualEqual, TokEqual), nil)
	case '<':
		s.add(s.either('=', TokLessEqual, TokLess), nil)
	case '>':
		s.add(s.either('=', TokGreaterEqual, TokGreater), nil)
	case '/':
		switch {
		case s.match('/'):
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
		case s.match('*'):
			s.blockComment()
		default:
			s.add(TokSlash, nil)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.newline()
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdent()
		default:
			s.fail(ErrInvalidCharacter, c)
		}
	}
}

// ----- scanning helpers -----

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expect byte) bool {
	if s.atEnd() || s.src[s.current] != expect {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) either(next byte, two, one TokKind) TokKind {
	if s.match(next) {
		return two
	}
	return one
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// newline is called after consuming a '\n'.
func (s *Scanner) newline() {
	s.line++
	s.lineStart = s.current
}

func (s *Scanner) add(kind TokKind, lit *Literal) {
	s.toks = append(s.toks, Token{
		Kind:   kind,
		Lexeme: string(s.src[s.start:s.current]),
		Lit:    lit,
		Line:   s.startLine,
		Col:    s.startCol,
	})
}

// fail records a fault at the start of the current lexeme.
func (s *Scanner) fail(kind ErrorKind, c byte) {
	s.errs = append(s.errs, &Error{Kind: kind, Line: s.startLine, Col: s.startCol, Char: c})
}

func (s *Scanner) blockComment() {
	for !s.atEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return
		}
		if s.advance() == '\n' {
			s.newline()
		}
	}
	s.fail(ErrUnterminatedBlockComment, 0)
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.atEnd() {
		if s.advance() == '\n' {
			s.newline()
		}
	}
	if s.atEnd() {
		s.fail(ErrUnterminatedString, 0)
		return
	}
	s.advance() // closing "
	value := string(s.src[s.start+1 : s.current-1])
	s.add(TokString, &Literal{Kind: LitString, Str: value})
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	// A '.' belongs to the number only when a digit follows it.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	text := string(s.src[s.start:s.current])
	// The loop above guarantees the syntax; overflow yields ±Inf.
	n, _ := strconv.ParseFloat(text, 64)
	s.add(TokNumber, &Literal{Kind: LitNumber, Num: n})
}

func (s *Scanner) scanIdent() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := string(s.src[s.start:s.current])
	if kind, ok := keywordKind(text); ok {
		s.add(kind, nil)
		return
	}
	s.add(TokIdent, &Literal{Kind: LitIdent, Str: text})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
