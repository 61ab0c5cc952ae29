/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

package token

import (
	"testing"

	"github.com/google/logismos/core/diag"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"and", AND},
		{"class", CLASS},
		{"else", ELSE},
		{"false", FALSE},
		{"for", FOR},
		{"fun", FUN},
		{"if", IF},
		{"nil", NIL},
		{"or", OR},
		{"print", PRINT},
		{"return", RETURN},
		{"super", SUPER},
		{"this", THIS},
		{"true", TRUE},
		{"var", VAR},
		{"while", WHILE},
		{"andesite", IDENT},
		{"True", IDENT},
		{"nilable", IDENT},
		{"_", IDENT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.name); got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{LEFT_PAREN, "LEFT_PAREN"},
		{BANG_EQUAL, "BANG_EQUAL"},
		{QUESTION, "QUESTION"},
		{COLON, "COLON"},
		{NUMBER, "NUMBER"},
		{EOF, "EOF"},
		{Kind(-1), "UNKNOWN"},
		{Kind(1000), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestTokenPos(t *testing.T) {
	tok := Token{Kind: NUMBER, Lexeme: "3.14", Line: 2, Column: 7, Offset: 11, Length: 4}
	want := diag.Position{Line: 2, Column: 7, Offset: 11}
	if got := tok.Pos(); got != want {
		t.Errorf("Pos() = %+v, want %+v", got, want)
	}
}
