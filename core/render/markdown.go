// Package render — Markdown renderer.
// Emits the navigation outline followed by each section's content
// converted from HTML with html-to-markdown.
package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/deckparse/core"
)

// MarkdownRenderer produces a Markdown document from an analysis result.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes the title, the contents list, and one heading plus
// converted body per section.
func (r *MarkdownRenderer) Render(result *core.AnalysisResult) ([]byte, error) {
	var b strings.Builder

	if result.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", result.Title)
	}

	if len(result.TocEntries) > 0 {
		b.WriteString("## Contents\n\n")
		for _, e := range result.TocEntries {
			indent := ""
			if e.Level > 1 {
				indent = strings.Repeat("  ", e.Level-1)
			}
			fmt.Fprintf(&b, "%s- [%s](#%s)\n", indent, e.Text, e.ID)
		}
		b.WriteString("\n")
	}

	for _, s := range result.Sections {
		fmt.Fprintf(&b, "## %s\n\n", s.Title)

		md, err := htmltomarkdown.ConvertString(s.Content)
		if err != nil {
			return nil, fmt.Errorf("converting section %s: %w", s.ID, err)
		}
		b.WriteString(strings.TrimSpace(md))
		b.WriteString("\n\n")
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
