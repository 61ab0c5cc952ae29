/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package parser builds expression trees from token streams.
//
// The parser is recursive descent with one token of lookahead and stops at
// the first error. Recursion depth follows the nesting depth of the input;
// deeply nested sources are bounded only by the goroutine stack.
package parser

import (
	"fmt"
	"strconv"

	"github.com/google/logismos/core/ast"
	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/token"
)

// Parse builds the expression tree for tokens, which must end with an EOF
// token as produced by scanner.Scan. A trailing token after the expression
// is an error. On failure the error is a *diag.Error of kind Parse.
func Parse(tokens []token.Token) (ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, diag.ParseError("unexpected end of expression", diag.Position{Line: 1, Column: 1})
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.check(token.EOF) {
		return nil, diag.ParseError("expected end of expression", p.peek().Pos())
	}
	return expr, nil
}

// parser consumes a token slice with a single cursor
type parser struct {
	tokens  []token.Token
	current int
}

// Expression parsing by recursive descent
// Precedence (low to high):
// 1. , (comma, left associative)
// 2. ?: (ternary, right associative)
// 3. ==, !=
// 4. <, >, <=, >=
// 5. +, -
// 6. *, /
// 7. unary !, -
// 8. literals and grouping

func (p *parser) parseExpression() (ast.Expr, error) {
	return p.parseComma()
}

func (p *parser) parseComma() (ast.Expr, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	for p.check(token.COMMA) {
		op := p.advance()
		right, err := p.parseTernary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	if !p.check(token.QUESTION) {
		return cond, nil
	}
	p.advance()

	then, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "expected ':' after then-branch"); err != nil {
		return nil, err
	}
	// Ternary is right-associative: a ? b : c ? d : e nests in the else
	// branch.
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: els}, nil
}

func (p *parser) parseEquality() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.check(token.BANG_EQUAL) || p.check(token.EQUAL_EQUAL) {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.check(token.GREATER) || p.check(token.GREATER_EQUAL) ||
		p.check(token.LESS) || p.check(token.LESS_EQUAL) {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseFactor() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.check(token.STAR) || p.check(token.SLASH) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if p.check(token.BANG) || p.check(token.MINUS) {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false}, nil

	case token.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true}, nil

	case token.NIL:
		p.advance()
		return &ast.NilLit{}, nil

	case token.NUMBER:
		p.advance()
		val, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, diag.ParseError(fmt.Sprintf("invalid number literal %q", tok.Lexeme), tok.Pos())
		}
		return &ast.NumberLit{Value: val}, nil

	case token.STRING:
		p.advance()
		return &ast.StringLit{Value: tok.Lexeme}, nil

	case token.LEFT_PAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RIGHT_PAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Inner: inner}, nil

	case token.EOF:
		return nil, diag.ParseError("unexpected end of expression", tok.Pos())

	default:
		return nil, diag.ParseError(fmt.Sprintf("unexpected token %q", tok.Lexeme), tok.Pos())
	}
}

func (p *parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

// advance consumes the current token. The cursor never moves past EOF.
func (p *parser) advance() token.Token {
	tok := p.tokens[p.current]
	if tok.Kind != token.EOF {
		p.current++
	}
	return tok
}

// consume advances past a token of the given kind, or reports message at
// the current token's position.
func (p *parser) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, diag.ParseError(message, p.peek().Pos())
}
