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

package server

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/google/logismos/core/query"
	"github.com/google/logismos/core/rendering"
	"github.com/google/logismos/core/views"
)

// Server represents the playground server with all its dependencies
type Server struct {
	renderer *rendering.PlaygroundRenderer
}

// NewServer creates a new playground server
func NewServer() (*Server, error) {
	renderer, err := rendering.NewPlaygroundRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return &Server{
		renderer: renderer,
	}, nil
}

// TimingCollector collects timing measurements for various operations
type TimingCollector struct {
	entries []views.TimingEntry
	start   time.Time
}

// NewTimingCollector creates a new timing collector
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{start: time.Now()}
}

// Record records a timing entry
func (tc *TimingCollector) Record(operation string, duration time.Duration) {
	tc.entries = append(tc.entries, views.TimingEntry{
		Operation:  operation,
		DurationMs: fmt.Sprintf("%.2f", float64(duration.Microseconds())/1000.0),
	})
}

// GetEntries returns the recorded entries
func (tc *TimingCollector) GetEntries() []views.TimingEntry {
	return tc.entries
}

// TotalMs returns total elapsed time in milliseconds as formatted string
func (tc *TimingCollector) TotalMs() string {
	return fmt.Sprintf("%.2f", float64(time.Since(tc.start).Microseconds())/1000.0)
}

// HandlePlaygroundRequest processes a playground request and writes the
// response. Expression failures are rendered into the page, not returned;
// the error return covers rendering problems only.
func (s *Server) HandlePlaygroundRequest(w io.Writer, requestURL *url.URL, setHeader func(key, value string)) error {
	timing := NewTimingCollector()

	// Parse URL into Query
	parseStart := time.Now()
	q := query.NewQuery(requestURL)
	timing.Record("Parse Query", time.Since(parseStart))

	// Run the pipeline and build the view model
	vmStart := time.Now()
	viewModel := views.BuildPlaygroundViewModel(q)
	timing.Record("Build ViewModel", time.Since(vmStart))

	// Set timing information
	viewModel.RenderTimeMs = timing.TotalMs()
	viewModel.TimingBreakdown = timing.GetEntries()

	// Set content type and render
	setHeader("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, viewModel); err != nil {
		log.Printf("Template rendering error: %v", err)
		return err
	}

	return nil
}
