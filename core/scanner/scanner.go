/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package scanner turns source text into tokens.
//
// The scanner makes a single pass over the source. It applies maximal munch
// to the one-or-two character operators, skips whitespace and // comments,
// and stops at the first error. Strings have no escape sequences: the lexeme
// is the text strictly between the quotes.
package scanner

import (
	"fmt"
	"strconv"

	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/token"
)

// Scan tokenizes source. On success the returned slice ends with exactly one
// EOF token. On failure the error is a *diag.Error of kind Syntax pointing
// at the offending byte.
func Scan(source string) ([]token.Token, error) {
	s := &scanner{source: source, line: 1, column: 1}
	for !s.atEnd() {
		s.markStart()
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.markStart()
	s.addLexeme(token.EOF, "")
	return s.tokens, nil
}

// scanner tracks a lexeme-start cursor and a current cursor over the source,
// plus the 1-based line and column of the current cursor.
type scanner struct {
	source string
	tokens []token.Token

	start   int // offset of the first byte of the lexeme being scanned
	current int // offset of the next unconsumed byte
	line    int
	column  int

	startLine   int
	startColumn int
}

func (s *scanner) scanToken() error {
	ch := s.advance()
	switch ch {
	case '(':
		s.add(token.LEFT_PAREN)
	case ')':
		s.add(token.RIGHT_PAREN)
	case '{':
		s.add(token.LEFT_BRACE)
	case '}':
		s.add(token.RIGHT_BRACE)
	case ',':
		s.add(token.COMMA)
	case '.':
		s.add(token.DOT)
	case '-':
		s.add(token.MINUS)
	case '+':
		s.add(token.PLUS)
	case ';':
		s.add(token.SEMICOLON)
	case '*':
		s.add(token.STAR)
	case ':':
		s.add(token.COLON)
	case '?':
		s.add(token.QUESTION)
	case '!':
		if s.match('=') {
			s.add(token.BANG_EQUAL)
		} else {
			s.add(token.BANG)
		}
	case '=':
		if s.match('=') {
			s.add(token.EQUAL_EQUAL)
		} else {
			s.add(token.EQUAL)
		}
	case '<':
		if s.match('=') {
			s.add(token.LESS_EQUAL)
		} else {
			s.add(token.LESS)
		}
	case '>':
		if s.match('=') {
			s.add(token.GREATER_EQUAL)
		} else {
			s.add(token.GREATER)
		}
	case '/':
		if s.match('/') {
			// Comment runs to the end of the line.
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			s.add(token.SLASH)
		}
	case ' ', '\t', '\r', '\n':
		// advance already tracked the line counter.
	case '"':
		return s.scanString()
	default:
		if isDigit(ch) {
			s.scanNumber()
			return nil
		}
		if isLetter(ch) {
			s.scanIdent()
			return nil
		}
		return diag.SyntaxError(fmt.Sprintf("unexpected character %q", ch), s.startPos())
	}
	return nil
}

// scanString consumes to the closing quote. The lexeme excludes the quotes
// and an unterminated string reports at the opening quote.
func (s *scanner) scanString() error {
	for !s.atEnd() && s.peek() != '"' {
		s.advance()
	}
	if s.atEnd() {
		return diag.SyntaxError("unterminated string literal", s.startPos())
	}
	s.advance()
	s.addLexeme(token.STRING, s.source[s.start+1:s.current-1])
	return nil
}

// scanNumber consumes digits with an optional fractional part. The dot is
// consumed only when a digit follows, so "1." scans as NUMBER then DOT.
func (s *scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.source[s.start:s.current]
	if _, err := strconv.ParseFloat(lexeme, 64); err != nil {
		panic("scanner: number lexeme " + strconv.Quote(lexeme) + " does not parse as float64")
	}
	s.add(token.NUMBER)
}

func (s *scanner) scanIdent() {
	for isLetter(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	name := s.source[s.start:s.current]
	s.addLexeme(token.Lookup(name), name)
}

// markStart records the current cursor as the start of the next lexeme.
func (s *scanner) markStart() {
	s.start = s.current
	s.startLine = s.line
	s.startColumn = s.column
}

func (s *scanner) advance() byte {
	ch := s.source[s.current]
	s.current++
	if ch == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

func (s *scanner) match(expected byte) bool {
	if s.atEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *scanner) atEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) add(kind token.Kind) {
	s.addLexeme(kind, s.source[s.start:s.current])
}

func (s *scanner) addLexeme(kind token.Kind, lexeme string) {
	s.tokens = append(s.tokens, token.Token{
		Kind:   kind,
		Lexeme: lexeme,
		Line:   s.startLine,
		Column: s.startColumn,
		Offset: s.start,
		Length: len(lexeme),
	})
}

func (s *scanner) startPos() diag.Position {
	return diag.Position{Line: s.startLine, Column: s.startColumn, Offset: s.start}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}
