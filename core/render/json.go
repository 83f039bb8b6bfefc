// Package render provides output renderers for analysis results.
// This file implements the JSON renderer, which emits the full
// AnalysisResult structure.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/deckparse/core"
)

// JSONRenderer produces indented JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the result as indented JSON.
func (r *JSONRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
