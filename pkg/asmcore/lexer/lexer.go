// Package lexer scans evmm source text into a stream of tokens.
//
// The grammar is flat enough — whitespace-separated mnemonics and
// numeric literals, with "//" line comments — that no parser-combinator
// or generated-grammar library in the retrieved corpus offers any
// leverage over a small hand-rolled scanner; this is a deliberate
// standard-library-only component (see DESIGN.md).
package lexer

import (
	"strings"

	"github.com/evmasm-go/evmasm/pkg/asmcore/asmerr"
	"github.com/evmasm-go/evmasm/pkg/asmcore/opcode"
	"github.com/evmasm-go/evmasm/pkg/asmcore/token"
)

// Lexer scans a source string one token at a time, with a single token of
// lookahead available via Peek.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int

	peeked    *token.Token
	peekedErr error
}

// New returns a Lexer positioned at the start of src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) skipSpaceAndComments() {
	for !l.atEnd() {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for !l.atEnd() && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// Peek returns the next token without consuming it. Calling Next
// afterward returns the same token and advances past it.
func (l *Lexer) Peek() (token.Token, error) {
	if l.peeked == nil {
		tok, err := l.scan()
		l.peeked = &tok
		l.peekedErr = err
	}
	return *l.peeked, l.peekedErr
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (token.Token, error) {
	if l.peeked != nil {
		tok, err := *l.peeked, l.peekedErr
		l.peeked = nil
		l.peekedErr = nil
		return tok, err
	}
	return l.scan()
}

func (l *Lexer) scan() (token.Token, error) {
	l.skipSpaceAndComments()
	if l.atEnd() {
		return token.Token{Type: token.EOF, Line: l.line, Col: l.col}, nil
	}

	startLine, startCol := l.line, l.col
	c := l.src[l.pos]

	switch {
	case c == '0' && l.pos+1 < len(l.src) && (l.src[l.pos+1] == 'x' || l.src[l.pos+1] == 'X'):
		start := l.pos
		l.advance()
		l.advance()
		for !l.atEnd() && isHexDigit(l.src[l.pos]) {
			l.advance()
		}
		text := l.src[start:l.pos]
		if len(text) <= 2 {
			return token.Token{}, &asmerr.ParseError{Lexeme: text, Line: startLine, Col: startCol}
		}
		return token.Token{Type: token.Hex, Text: text, Line: startLine, Col: startCol}, nil

	case isDigit(c):
		start := l.pos
		for !l.atEnd() && isDigit(l.src[l.pos]) {
			l.advance()
		}
		text := l.src[start:l.pos]
		return token.Token{Type: token.Decimal, Text: text, Line: startLine, Col: startCol}, nil

	case isIdentStart(c):
		start := l.pos
		for !l.atEnd() && isIdentChar(l.src[l.pos]) {
			l.advance()
		}
		text := l.src[start:l.pos]
		kind, ok := opcode.Lookup(strings.ToUpper(text))
		if !ok {
			return token.Token{}, &asmerr.ParseError{Lexeme: text, Line: startLine, Col: startCol}
		}
		return token.Token{Type: token.Mnemonic, Text: text, Kind: kind, Line: startLine, Col: startCol}, nil

	default:
		l.advance()
		return token.Token{}, &asmerr.ParseError{Lexeme: string(c), Line: startLine, Col: startCol}
	}
}
