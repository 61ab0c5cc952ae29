/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Logismos Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package views

import (
	"errors"

	"github.com/google/safehtml"

	"github.com/google/logismos/core/ast"
	"github.com/google/logismos/core/diag"
	"github.com/google/logismos/core/eval"
	"github.com/google/logismos/core/parser"
	"github.com/google/logismos/core/query"
	"github.com/google/logismos/core/scanner"
)

// PlaygroundViewModel contains the pipeline output formatted for template consumption
type PlaygroundViewModel struct {
	Title      string
	Source     string       // Expression as entered by the user
	HasSource  bool         // False on the empty landing page
	CurrentURL safehtml.URL // Current URL for building links

	Notations []NotationLink // Rendering notation tabs
	Examples  []ExampleLink  // Canned expressions for the landing page

	Tokens []TokenRow // Scanner output (populated once scanning succeeds)
	Tree   string     // Parse tree rendered in the selected notation
	Result string     // Evaluation result

	Failure *FailureView // Set when any stage failed

	// Timing info
	RenderTimeMs    string        // Total server-side time, filled in by the handler
	TimingBreakdown []TimingEntry // Per-stage measurements
}

// TimingEntry is one timed operation for the page footer
type TimingEntry struct {
	Operation  string
	DurationMs string
}

// NotationLink is one entry in the notation tab row
type NotationLink struct {
	Name   string
	URL    safehtml.URL // URL with the notation replaced, expression preserved
	Active bool         // Whether this is the selected notation
}

// ExampleLink is a canned expression offered on the landing page
type ExampleLink struct {
	Source string
	URL    safehtml.URL
}

// TokenRow is one scanned token formatted for display
type TokenRow struct {
	Kind   string
	Lexeme string
	Line   int
	Column int
}

// FailureView describes a failed pipeline stage
type FailureView struct {
	Kind    string // syntax, parse or runtime
	Message string
	Help    string // Empty when the error carries no suggestion
	Report  string // Formatted report with source excerpt and caret
}

// exampleSources are the canned expressions offered on the landing page.
var exampleSources = []string{
	"1 + 2 * 3",
	"-123 * (45.67)",
	`"lo" + "gismos"`,
	"true ? 1 : 2, 3",
	"(1 + 2) * 3 == 9",
}

// BuildPlaygroundViewModel runs the pipeline over the query's expression and
// formats every stage for the playground template. Stages completed before a
// failure stay populated, so the template can show tokens next to a parse
// error or the tree next to a runtime error.
func BuildPlaygroundViewModel(q *query.Query) PlaygroundViewModel {
	vm := PlaygroundViewModel{
		Title:      "Logismos Playground",
		Source:     q.Source,
		HasSource:  q.Source != "",
		CurrentURL: q.ToSafeURL(),
	}

	// Build notation tabs, preserving the current expression
	for _, notation := range []ast.Notation{ast.Lisp, ast.Polish, ast.RPN} {
		vm.Notations = append(vm.Notations, NotationLink{
			Name:   notation.String(),
			URL:    q.WithNotation(notation),
			Active: notation == q.Notation,
		})
	}

	// Build example links, preserving the current notation
	for _, source := range exampleSources {
		vm.Examples = append(vm.Examples, ExampleLink{
			Source: source,
			URL:    q.WithSource(source),
		})
	}

	if !vm.HasSource {
		return vm
	}

	tokens, err := scanner.Scan(q.Source)
	if err != nil {
		vm.Failure = buildFailureView(err, q.Source)
		return vm
	}
	for _, tok := range tokens {
		vm.Tokens = append(vm.Tokens, TokenRow{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Line:   tok.Line,
			Column: tok.Column,
		})
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		vm.Failure = buildFailureView(err, q.Source)
		return vm
	}
	vm.Tree = ast.Print(tree, q.Notation)

	val, err := eval.Evaluate(tree)
	if err != nil {
		vm.Failure = buildFailureView(err, q.Source)
		return vm
	}
	vm.Result = val.String()

	return vm
}

// buildFailureView formats a pipeline error for display
func buildFailureView(err error, source string) *FailureView {
	view := &FailureView{
		Kind:    "error",
		Message: err.Error(),
		Report:  diag.Format(err, source),
	}
	var derr *diag.Error
	if errors.As(err, &derr) {
		view.Kind = derr.Kind.String()
		view.Message = derr.Message
		view.Help = derr.Help
	}
	return view
}
