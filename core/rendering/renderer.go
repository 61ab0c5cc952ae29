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

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"

	"github.com/google/logismos/core/views"
)

//go:embed templates/*
var templateFS embed.FS

// PlaygroundRenderer handles rendering of playground view models to HTML
type PlaygroundRenderer struct {
	playgroundTemplate *template.Template
}

// NewPlaygroundRenderer creates a new playground renderer
func NewPlaygroundRenderer() (*PlaygroundRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	playgroundTemplate, err := template.New("playground.html").ParseFS(trustedFS, "templates/playground.html")
	if err != nil {
		return nil, err
	}

	return &PlaygroundRenderer{
		playgroundTemplate: playgroundTemplate,
	}, nil
}

// Render renders a PlaygroundViewModel to the provided writer
func (r *PlaygroundRenderer) Render(w io.Writer, vm views.PlaygroundViewModel) error {
	return r.playgroundTemplate.Execute(w, vm)
}
