/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

// Package value defines the runtime values produced by evaluation.
package value

import (
	"math"
	"strconv"
)

// Value represents a runtime value. The zero Value is nil.
type Value struct {
	typ     valueType
	numVal  float64
	strVal  string
	boolVal bool
}

type valueType int

const (
	typeNil    valueType = iota // Nil value
	typeNumber                  // Floating-point number
	typeString                  // String value
	typeBool                    // Boolean value
)

// NewNumber creates a number value
func NewNumber(n float64) Value {
	return Value{typ: typeNumber, numVal: n}
}

// NewString creates a string value
func NewString(s string) Value {
	return Value{typ: typeString, strVal: s}
}

// NewBool creates a boolean value
func NewBool(b bool) Value {
	return Value{typ: typeBool, boolVal: b}
}

// Nil returns the nil value
func Nil() Value {
	return Value{typ: typeNil}
}

// IsNumber checks if the value is a number
func (v Value) IsNumber() bool { return v.typ == typeNumber }

// IsString checks if the value is a string
func (v Value) IsString() bool { return v.typ == typeString }

// IsBool checks if the value is a boolean
func (v Value) IsBool() bool { return v.typ == typeBool }

// IsNil checks if the value is nil
func (v Value) IsNil() bool { return v.typ == typeNil }

// AsNumber returns the number payload, or 0 for other types
func (v Value) AsNumber() float64 {
	if v.typ == typeNumber {
		return v.numVal
	}
	return 0
}

// AsString returns the string payload, or "" for other types
func (v Value) AsString() string {
	if v.typ == typeString {
		return v.strVal
	}
	return ""
}

// AsBool returns the boolean payload, or false for other types
func (v Value) AsBool() bool {
	if v.typ == typeBool {
		return v.boolVal
	}
	return false
}

// Truthy reports whether the value counts as true in a condition. Only the
// boolean false is falsy; every other value, including nil, is truthy.
func (v Value) Truthy() bool {
	if v.typ == typeBool {
		return v.boolVal
	}
	return true
}

// TypeName returns a human-readable name for the value's type
func (v Value) TypeName() string {
	switch v.typ {
	case typeNumber:
		return "number"
	case typeString:
		return "string"
	case typeBool:
		return "boolean"
	case typeNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Equal reports whether two values are equal. Values of different types are
// never equal; numbers compare by float64 equality.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case typeNumber:
		return v.numVal == other.numVal
	case typeString:
		return v.strVal == other.strVal
	case typeBool:
		return v.boolVal == other.boolVal
	default:
		return true
	}
}

// String renders the value for display. Strings render as their content,
// without quotes.
func (v Value) String() string {
	switch v.typ {
	case typeNumber:
		return FormatNumber(v.numVal)
	case typeString:
		return v.strVal
	case typeBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	default:
		return "nil"
	}
}

// FormatNumber renders a float64 the way the language displays numbers:
// integral values print without a decimal part.
func FormatNumber(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
