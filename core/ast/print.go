/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/logismos/core/value"
)

// Notation selects the rendering used by Print.
type Notation int

const (
	Lisp   Notation = iota // parenthesized prefix, groupings visible
	Polish                 // flat prefix
	RPN                    // flat postfix
)

var notationNames = [...]string{
	Lisp:   "lisp",
	Polish: "polish",
	RPN:    "rpn",
}

func (n Notation) String() string {
	if n < 0 || int(n) >= len(notationNames) {
		return fmt.Sprintf("notation(%d)", int(n))
	}
	return notationNames[n]
}

// ParseNotation maps a name such as "lisp" to its Notation.
func ParseNotation(name string) (Notation, error) {
	switch strings.ToLower(name) {
	case "lisp":
		return Lisp, nil
	case "polish":
		return Polish, nil
	case "rpn":
		return RPN, nil
	}
	return Lisp, fmt.Errorf("unknown notation %q", name)
}

// Print renders the tree in the given notation. Printing never evaluates
// anything and has no side effects.
//
// In Lisp notation every operation is parenthesized and a grouping renders
// as (group ...). Polish notation is flat prefix except for unary operators,
// which keep their parentheses. RPN is flat postfix with unary operators
// rendered operand first. The ternary operator renders with the ?: symbol.
func Print(e Expr, notation Notation) string {
	switch n := e.(type) {
	case *NumberLit:
		return value.FormatNumber(n.Value)

	case *StringLit:
		// Strings carry no escape sequences, so wrapping the raw content
		// reproduces the source literal.
		return `"` + n.Value + `"`

	case *BoolLit:
		return strconv.FormatBool(n.Value)

	case *NilLit:
		return "nil"

	case *Grouping:
		if notation == Lisp {
			return fmt.Sprintf("(group %s)", Print(n.Inner, notation))
		}
		return Print(n.Inner, notation)

	case *Unary:
		if notation == RPN {
			return fmt.Sprintf("%s %s", Print(n.Right, notation), n.Operator.Lexeme)
		}
		return fmt.Sprintf("(%s %s)", n.Operator.Lexeme, Print(n.Right, notation))

	case *Binary:
		left := Print(n.Left, notation)
		right := Print(n.Right, notation)
		switch notation {
		case Polish:
			return fmt.Sprintf("%s %s %s", n.Operator.Lexeme, left, right)
		case RPN:
			return fmt.Sprintf("%s %s %s", left, right, n.Operator.Lexeme)
		default:
			return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, left, right)
		}

	case *Ternary:
		cond := Print(n.Cond, notation)
		then := Print(n.Then, notation)
		els := Print(n.Else, notation)
		switch notation {
		case Polish:
			return fmt.Sprintf("?: %s %s %s", cond, then, els)
		case RPN:
			return fmt.Sprintf("%s %s %s ?:", cond, then, els)
		default:
			return fmt.Sprintf("(?: %s %s %s)", cond, then, els)
		}
	}
	panic(fmt.Sprintf("ast: unknown node %T", e))
}
