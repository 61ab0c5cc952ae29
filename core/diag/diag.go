/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package diag defines the position and error values shared by every stage
// of the pipeline. Errors are plain values: the stages build and return
// them, the shells decide how to present them.
package diag

import "fmt"

// Kind classifies an error by the stage that produced it.
type Kind int

const (
	Syntax Kind = iota
	Parse
	Runtime
	Type
)

var kindNames = [...]string{
	Syntax:  "syntax",
	Parse:   "parse",
	Runtime: "runtime",
	Type:    "type",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Position locates a byte in the source text. Line and Column are 1-based,
// Offset is the absolute byte index from the start of the source.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Error describes a failure in one stage of the pipeline. Help, when set,
// suggests a remediation and is shown by the shells below the message.
type Error struct {
	Kind     Kind
	Message  string
	Position Position
	Help     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s error: %s", e.Position, e.Kind, e.Message)
}

// New returns an error of the given kind at the given position.
func New(kind Kind, message string, pos Position) *Error {
	return &Error{Kind: kind, Message: message, Position: pos}
}

// SyntaxError reports a scanning failure.
func SyntaxError(message string, pos Position) *Error {
	return New(Syntax, message, pos)
}

// ParseError reports a parsing failure.
func ParseError(message string, pos Position) *Error {
	return New(Parse, message, pos)
}

// RuntimeError reports an evaluation failure.
func RuntimeError(message string, pos Position) *Error {
	return New(Runtime, message, pos)
}

// TypeError reports a static typing failure. No current stage performs
// static checks; the kind is part of the model for stages that will.
func TypeError(message string, pos Position) *Error {
	return New(Type, message, pos)
}

// WithHelp attaches a remediation hint and returns the error.
func (e *Error) WithHelp(help string) *Error {
	e.Help = help
	return e
}

// DivisionByZero is the error returned for a division with a zero divisor.
func DivisionByZero(pos Position) *Error {
	return RuntimeError("division by zero", pos).
		WithHelp("check the divisor before dividing")
}
