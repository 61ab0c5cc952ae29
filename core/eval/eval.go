/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package eval walks an expression tree and produces a value.
//
// Evaluation is pure: it performs no I/O and leaves the tree untouched, so
// the same tree may be evaluated any number of times. All failures return a
// *diag.Error of kind Runtime carrying the position of the operator that
// rejected its operands.
package eval

import (
	"fmt"

	"github.com/google/logismos/core/ast"
	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/token"
	"github.com/google/logismos/core/value"
)

// Evaluate computes the value of the expression tree rooted at e.
func Evaluate(e ast.Expr) (value.Value, error) {
	return eval(e)
}

func eval(e ast.Expr) (value.Value, error) {
	switch n := e.(type) {
	case *ast.NumberLit:
		return value.NewNumber(n.Value), nil

	case *ast.StringLit:
		return value.NewString(n.Value), nil

	case *ast.BoolLit:
		return value.NewBool(n.Value), nil

	case *ast.NilLit:
		return value.Nil(), nil

	case *ast.Grouping:
		return eval(n.Inner)

	case *ast.Unary:
		return evalUnary(n)

	case *ast.Binary:
		return evalBinary(n)

	case *ast.Ternary:
		return evalTernary(n)
	}
	return value.Nil(), fmt.Errorf("unknown node type: %T", e)
}

func evalUnary(n *ast.Unary) (value.Value, error) {
	right, err := eval(n.Right)
	if err != nil {
		return value.Nil(), err
	}

	switch n.Operator.Kind {
	case token.MINUS:
		if !right.IsNumber() {
			return value.Nil(), diag.RuntimeError("operand must be a number", n.Operator.Pos())
		}
		return value.NewNumber(-right.AsNumber()), nil

	case token.BANG:
		return value.NewBool(!right.Truthy()), nil
	}
	return value.Nil(), diag.RuntimeError("invalid unary operator", n.Operator.Pos())
}

func evalBinary(n *ast.Binary) (value.Value, error) {
	// The comma operator sequences: the left value is computed and
	// discarded, the right value is the result.
	if n.Operator.Kind == token.COMMA {
		if _, err := eval(n.Left); err != nil {
			return value.Nil(), err
		}
		return eval(n.Right)
	}

	left, err := eval(n.Left)
	if err != nil {
		return value.Nil(), err
	}
	right, err := eval(n.Right)
	if err != nil {
		return value.Nil(), err
	}

	switch n.Operator.Kind {
	case token.PLUS:
		switch {
		case left.IsNumber() && right.IsNumber():
			return value.NewNumber(left.AsNumber() + right.AsNumber()), nil
		case left.IsString() && right.IsString():
			return value.NewString(left.AsString() + right.AsString()), nil
		}
		return value.Nil(), diag.RuntimeError("operands must be two numbers or two strings", n.Operator.Pos())

	case token.MINUS:
		return numberOp(left, right, n.Operator, func(a, b float64) float64 { return a - b })

	case token.STAR:
		return numberOp(left, right, n.Operator, func(a, b float64) float64 { return a * b })

	case token.SLASH:
		if !left.IsNumber() || !right.IsNumber() {
			return value.Nil(), invalidOperands(left, right, n.Operator)
		}
		if right.AsNumber() == 0 {
			return value.Nil(), diag.DivisionByZero(n.Operator.Pos())
		}
		return value.NewNumber(left.AsNumber() / right.AsNumber()), nil

	case token.EQUAL_EQUAL:
		return value.NewBool(left.Equal(right)), nil

	case token.BANG_EQUAL:
		return value.NewBool(!left.Equal(right)), nil

	case token.GREATER:
		return compareOp(left, right, n.Operator, func(a, b float64) bool { return a > b })

	case token.GREATER_EQUAL:
		return compareOp(left, right, n.Operator, func(a, b float64) bool { return a >= b })

	case token.LESS:
		return compareOp(left, right, n.Operator, func(a, b float64) bool { return a < b })

	case token.LESS_EQUAL:
		return compareOp(left, right, n.Operator, func(a, b float64) bool { return a <= b })
	}
	return value.Nil(), diag.RuntimeError("invalid binary operator", n.Operator.Pos())
}

// evalTernary computes the condition and then exactly one branch.
func evalTernary(n *ast.Ternary) (value.Value, error) {
	cond, err := eval(n.Cond)
	if err != nil {
		return value.Nil(), err
	}
	if cond.Truthy() {
		return eval(n.Then)
	}
	return eval(n.Else)
}

// numberOp applies an arithmetic operation after checking both operands are
// numbers.
func numberOp(left, right value.Value, operator token.Token, op func(a, b float64) float64) (value.Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return value.Nil(), invalidOperands(left, right, operator)
	}
	return value.NewNumber(op(left.AsNumber(), right.AsNumber())), nil
}

// compareOp applies an ordering operation after checking both operands are
// numbers.
func compareOp(left, right value.Value, operator token.Token, op func(a, b float64) bool) (value.Value, error) {
	if !left.IsNumber() || !right.IsNumber() {
		return value.Nil(), invalidOperands(left, right, operator)
	}
	return value.NewBool(op(left.AsNumber(), right.AsNumber())), nil
}

func invalidOperands(left, right value.Value, operator token.Token) *diag.Error {
	help := fmt.Sprintf("'%s' requires number operands, got %s and %s",
		operator.Lexeme, left.TypeName(), right.TypeName())
	return diag.RuntimeError("operands must be numbers", operator.Pos()).WithHelp(help)
}
