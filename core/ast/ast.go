/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package ast defines the expression tree built by the parser.
//
// Nodes are immutable once built and hold their children exclusively, so a
// tree may be walked by concurrent readers.
package ast

import "github.com/google/logismos/core/token"

// Expr is the interface for all expression nodes
type Expr interface {
	expr()
}

// NumberLit is a numeric literal
type NumberLit struct {
	Value float64
}

func (e *NumberLit) expr() {}

// StringLit is a string literal
type StringLit struct {
	Value string
}

func (e *StringLit) expr() {}

// BoolLit is a boolean literal
type BoolLit struct {
	Value bool
}

func (e *BoolLit) expr() {}

// NilLit is the nil literal
type NilLit struct{}

func (e *NilLit) expr() {}

// Binary is an infix operation. Operator keeps the source token so the
// evaluator can report errors at the operator's position.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) expr() {}

// Grouping is a parenthesized expression
type Grouping struct {
	Inner Expr
}

func (e *Grouping) expr() {}

// Unary is a prefix operation
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) expr() {}

// Ternary is the conditional operator cond ? then : else
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *Ternary) expr() {}
