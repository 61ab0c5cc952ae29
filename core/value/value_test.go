/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors
*/

package value

import (
	"math"
	"testing"
)

func TestZeroValueIsNil(t *testing.T) {
	var v Value
	if !v.IsNil() {
		t.Errorf("zero Value = %v, want nil", v)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		val  Value
		want bool
	}{
		{"true", NewBool(true), true},
		{"false", NewBool(false), false},
		{"nil is truthy", Nil(), true},
		{"zero is truthy", NewNumber(0), true},
		{"empty string is truthy", NewString(""), true},
		{"number", NewNumber(42), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.Truthy(); got != tt.want {
				t.Errorf("Truthy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{NewNumber(1), "number"},
		{NewString("x"), "string"},
		{NewBool(true), "boolean"},
		{Nil(), "nil"},
	}
	for _, tt := range tests {
		if got := tt.val.TypeName(); got != tt.want {
			t.Errorf("TypeName() = %q, want %q", got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal numbers", NewNumber(2), NewNumber(2), true},
		{"unequal numbers", NewNumber(2), NewNumber(3), false},
		{"equal strings", NewString("ab"), NewString("ab"), true},
		{"unequal strings", NewString("ab"), NewString("ba"), false},
		{"equal bools", NewBool(true), NewBool(true), true},
		{"unequal bools", NewBool(true), NewBool(false), false},
		{"nil equals nil", Nil(), Nil(), true},
		{"number and string differ", NewNumber(1), NewString("1"), false},
		{"nil and false differ", Nil(), NewBool(false), false},
		{"nil and zero differ", Nil(), NewNumber(0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{NewNumber(7), "7"},
		{NewNumber(-5), "-5"},
		{NewNumber(2.5), "2.5"},
		{NewNumber(0), "0"},
		{NewString("hello"), "hello"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{Nil(), "nil"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{-5, "-5"},
		{0, "0"},
		{2.5, "2.5"},
		{0.125, "0.125"},
		{100000000000000, "100000000000000"},
		{1e15, "1e+15"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	if got := NewNumber(3.5).AsNumber(); got != 3.5 {
		t.Errorf("AsNumber() = %v, want 3.5", got)
	}
	if got := NewString("s").AsString(); got != "s" {
		t.Errorf("AsString() = %q, want %q", got, "s")
	}
	if !NewBool(true).AsBool() {
		t.Error("AsBool() = false, want true")
	}
	// Accessors on the wrong type return zero values.
	if got := NewString("s").AsNumber(); got != 0 {
		t.Errorf("AsNumber() on string = %v, want 0", got)
	}
	if got := NewNumber(1).AsString(); got != "" {
		t.Errorf("AsString() on number = %q, want empty", got)
	}
	if Nil().AsBool() {
		t.Error("AsBool() on nil = true, want false")
	}
}
