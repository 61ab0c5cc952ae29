/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

package scanner

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Kind
	}{
		{"", []token.Kind{token.EOF}},
		{"()", []token.Kind{token.LEFT_PAREN, token.RIGHT_PAREN, token.EOF}},
		{"{;}", []token.Kind{token.LEFT_BRACE, token.SEMICOLON, token.RIGHT_BRACE, token.EOF}},
		{"?:", []token.Kind{token.QUESTION, token.COLON, token.EOF}},
		{"+ - * /", []token.Kind{token.PLUS, token.MINUS, token.STAR, token.SLASH, token.EOF}},
		{". ,", []token.Kind{token.DOT, token.COMMA, token.EOF}},
		{"! != = ==", []token.Kind{token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL, token.EOF}},
		{"< <= > >=", []token.Kind{token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL, token.EOF}},
		{"1 + 2.5", []token.Kind{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}},
		{`"hi" + name`, []token.Kind{token.STRING, token.PLUS, token.IDENT, token.EOF}},
		{"true ? nil : false", []token.Kind{token.TRUE, token.QUESTION, token.NIL, token.COLON, token.FALSE, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Scan(tt.source)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if got := kinds(tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanMaximalMunch(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Kind
	}{
		{"==", []token.Kind{token.EQUAL_EQUAL, token.EOF}},
		{"= =", []token.Kind{token.EQUAL, token.EQUAL, token.EOF}},
		{"!==", []token.Kind{token.BANG_EQUAL, token.EQUAL, token.EOF}},
		{"<=>", []token.Kind{token.LESS_EQUAL, token.GREATER, token.EOF}},
		{">>=", []token.Kind{token.GREATER, token.GREATER_EQUAL, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Scan(tt.source)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if got := kinds(tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	source := "1 + 22\n\"ab\"\nfoo"
	want := []token.Token{
		{Kind: token.NUMBER, Lexeme: "1", Line: 1, Column: 1, Offset: 0, Length: 1},
		{Kind: token.PLUS, Lexeme: "+", Line: 1, Column: 3, Offset: 2, Length: 1},
		{Kind: token.NUMBER, Lexeme: "22", Line: 1, Column: 5, Offset: 4, Length: 2},
		{Kind: token.STRING, Lexeme: "ab", Line: 2, Column: 1, Offset: 7, Length: 2},
		{Kind: token.IDENT, Lexeme: "foo", Line: 3, Column: 1, Offset: 12, Length: 3},
		{Kind: token.EOF, Lexeme: "", Line: 3, Column: 4, Offset: 15, Length: 0},
	}
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %+v, want %+v", tokens, want)
	}
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []token.Kind
	}{
		{"comment to newline", "1 // rest is ignored\n2", []token.Kind{token.NUMBER, token.NUMBER, token.EOF}},
		{"comment at end of input", "1 // no newline", []token.Kind{token.NUMBER, token.EOF}},
		{"comment only", "// nothing here", []token.Kind{token.EOF}},
		{"slash is division", "1 / 2", []token.Kind{token.NUMBER, token.SLASH, token.NUMBER, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.source)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if got := kinds(tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanStrings(t *testing.T) {
	tokens, err := Scan(`"hello world"`)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	tok := tokens[0]
	if tok.Kind != token.STRING || tok.Lexeme != "hello world" {
		t.Errorf("token = %+v, want STRING %q", tok, "hello world")
	}
	if tok.Length != len("hello world") {
		t.Errorf("Length = %d, want %d", tok.Length, len("hello world"))
	}
}

func TestScanMultilineString(t *testing.T) {
	tokens, err := Scan("\"a\nb\" + 1")
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if tokens[0].Lexeme != "a\nb" || tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("string token = %+v", tokens[0])
	}
	// The + follows the string on the second physical line.
	if tokens[1].Kind != token.PLUS || tokens[1].Line != 2 || tokens[1].Column != 4 {
		t.Errorf("plus token = %+v", tokens[1])
	}
}

func TestScanNoEscapeProcessing(t *testing.T) {
	tokens, err := Scan(`"a\nb"`)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if tokens[0].Lexeme != `a\nb` {
		t.Errorf("lexeme = %q, want backslash and n preserved", tokens[0].Lexeme)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tests := []struct {
		source  string
		wantPos diag.Position
	}{
		{`"abc`, diag.Position{Line: 1, Column: 1, Offset: 0}},
		{"1 + \"abc\ndef", diag.Position{Line: 1, Column: 5, Offset: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, err := Scan(tt.source)
			var derr *diag.Error
			if !errors.As(err, &derr) {
				t.Fatalf("error = %v, want *diag.Error", err)
			}
			if derr.Kind != diag.Syntax {
				t.Errorf("kind = %v, want syntax", derr.Kind)
			}
			if derr.Message != "unterminated string literal" {
				t.Errorf("message = %q", derr.Message)
			}
			if derr.Position != tt.wantPos {
				t.Errorf("position = %+v, want %+v", derr.Position, tt.wantPos)
			}
		})
	}
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Kind
		lexeme string
	}{
		{"123", []token.Kind{token.NUMBER, token.EOF}, "123"},
		{"12.5", []token.Kind{token.NUMBER, token.EOF}, "12.5"},
		{"007", []token.Kind{token.NUMBER, token.EOF}, "007"},
		// The dot is consumed only when a digit follows.
		{"1.", []token.Kind{token.NUMBER, token.DOT, token.EOF}, "1"},
		{".5", []token.Kind{token.DOT, token.NUMBER, token.EOF}, "."},
		{"1.2.3", []token.Kind{token.NUMBER, token.DOT, token.NUMBER, token.EOF}, "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Scan(tt.source)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if got := kinds(tokens); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
			if tokens[0].Lexeme != tt.lexeme {
				t.Errorf("first lexeme = %q, want %q", tokens[0].Lexeme, tt.lexeme)
			}
		})
	}
}

func TestScanKeywords(t *testing.T) {
	source := "and class else false for fun if nil or print return super this true var while"
	want := []token.Kind{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.EOF,
	}
	tokens, err := Scan(source)
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	if got := kinds(tokens); !reflect.DeepEqual(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestScanIdentifiers(t *testing.T) {
	tests := []struct {
		source string
		want   token.Kind
	}{
		{"This", token.IDENT},
		{"nilable", token.IDENT},
		{"_tmp", token.IDENT},
		{"x2", token.IDENT},
		{"orchid", token.IDENT},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, err := Scan(tt.source)
			if err != nil {
				t.Fatalf("scan error: %v", err)
			}
			if tokens[0].Kind != tt.want || tokens[0].Lexeme != tt.source {
				t.Errorf("token = %+v, want %v %q", tokens[0], tt.want, tt.source)
			}
		})
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	tests := []struct {
		source  string
		wantMsg string
		wantPos diag.Position
	}{
		{"@", "unexpected character '@'", diag.Position{Line: 1, Column: 1, Offset: 0}},
		{"1 + $x", "unexpected character '$'", diag.Position{Line: 1, Column: 5, Offset: 4}},
		{"1 +\n#", "unexpected character '#'", diag.Position{Line: 2, Column: 1, Offset: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			_, err := Scan(tt.source)
			var derr *diag.Error
			if !errors.As(err, &derr) {
				t.Fatalf("error = %v, want *diag.Error", err)
			}
			if derr.Kind != diag.Syntax || derr.Message != tt.wantMsg {
				t.Errorf("error = %v, want syntax %q", derr, tt.wantMsg)
			}
			if derr.Position != tt.wantPos {
				t.Errorf("position = %+v, want %+v", derr.Position, tt.wantPos)
			}
		})
	}
}

func TestScanSingleEOF(t *testing.T) {
	tokens, err := Scan("1 + 2 // trailing comment")
	if err != nil {
		t.Fatalf("scan error: %v", err)
	}
	count := 0
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			count++
		}
	}
	if count != 1 || tokens[len(tokens)-1].Kind != token.EOF {
		t.Errorf("want exactly one trailing EOF, got %v", kinds(tokens))
	}
}
