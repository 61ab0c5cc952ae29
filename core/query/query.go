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

package query

import (
	"net/url"

	"github.com/google/safehtml"

	"github.com/google/logismos/core/ast"
)

// Query represents the parsed state of a playground URL
type Query struct {
	// Base path (e.g., "/")
	Path string

	// Core parameters
	Source   string       // The expression being evaluated
	Notation ast.Notation // Tree rendering notation (lisp, polish, rpn)
}

// NewQuery creates a Query from a URL
func NewQuery(u *url.URL) *Query {
	// The URL is already parsed since it comes from http.Request; we only
	// extract query parameters here.
	state := &Query{
		Path:     u.Path,
		Notation: ast.Lisp, // Default notation
	}

	q := u.Query()

	// Extract the expression parameter
	state.Source = q.Get("expr")

	// Extract the notation parameter; unknown names keep the default
	if notation, err := ast.ParseNotation(q.Get("notation")); err == nil {
		state.Notation = notation
	}

	return state
}

// Clone creates a copy of the Query
func (s *Query) Clone() *Query {
	clone := *s
	return &clone
}

// WithNotation returns a URL with the notation replaced
func (s *Query) WithNotation(notation ast.Notation) safehtml.URL {
	newState := s.Clone()
	newState.Notation = notation
	return newState.ToSafeURL()
}

// WithSource returns a URL with the expression replaced
func (s *Query) WithSource(source string) safehtml.URL {
	newState := s.Clone()
	newState.Source = source
	return newState.ToSafeURL()
}

// ToURL converts the Query back to a URL string
func (s *Query) ToURL() string {
	u := &url.URL{
		Path: s.Path,
	}

	q := u.Query()

	// Add the expression parameter
	if s.Source != "" {
		q.Set("expr", s.Source)
	}

	// Add the notation parameter (always included in URL)
	q.Set("notation", s.Notation.String())

	u.RawQuery = q.Encode()
	return u.String()
}

// ToSafeURL converts the Query to a safehtml.URL
func (s *Query) ToSafeURL() safehtml.URL {
	urlStr := s.ToURL()
	// URLSanitized sanitizes the input string and returns a URL
	return safehtml.URLSanitized(urlStr)
}
