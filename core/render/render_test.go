package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/deckparse/core"
)

func sampleResult() *core.AnalysisResult {
	return &core.AnalysisResult{
		Title: "Sample Deck",
		TocEntries: []core.TocEntry{
			{ID: "intro", Text: "Intro", IsActive: true},
			{ID: "detail", Text: "Detail"},
		},
		Sections: []core.Section{
			{ID: "intro", Title: "Introduction", Content: "<p>Welcome to the <b>deck</b>.</p>", NavRef: "intro", IsActive: true},
			{ID: "detail", Title: "Details", Content: "<p>More content.</p>", NavRef: "detail"},
		},
	}
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded core.AnalysisResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Title != "Sample Deck" {
		t.Errorf("expected title round-trip, got %q", decoded.Title)
	}
	if len(decoded.Sections) != 2 || decoded.Sections[0].NavRef != "intro" {
		t.Errorf("unexpected sections: %+v", decoded.Sections)
	}

	if got := NewJSONRenderer().Extension(); got != ".json" {
		t.Errorf("expected .json, got %q", got)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	md := string(data)

	if !strings.Contains(md, "# Sample Deck") {
		t.Error("missing document title heading")
	}
	if !strings.Contains(md, "- [Intro](#intro)") {
		t.Error("missing contents entry")
	}
	if !strings.Contains(md, "## Introduction") {
		t.Error("missing section heading")
	}
	if !strings.Contains(md, "**deck**") {
		t.Error("section HTML was not converted to Markdown")
	}
	if strings.Contains(md, "<p>") {
		t.Error("raw HTML leaked into Markdown output")
	}

	if got := NewMarkdownRenderer().Extension(); got != ".md" {
		t.Errorf("expected .md, got %q", got)
	}
}

func TestPDFRenderer(t *testing.T) {
	data, err := NewPDFRenderer().Render(sampleResult())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("output does not look like a PDF document")
	}

	if got := NewPDFRenderer().Extension(); got != ".pdf" {
		t.Errorf("expected .pdf, got %q", got)
	}
}
