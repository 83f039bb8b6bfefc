// Package core defines the data model and stage interfaces for deckparse.
// The Analyzer produces pure data; everything downstream (renderers, the
// HTTP store, the batch pipeline) consumes it without touching the source
// document again.
package core

// TocEntry is one navigable item inferred from the document's navigation
// markup (or synthesized from headings when none exists).
type TocEntry struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	IconRef  string `json:"icon_ref,omitempty"`
	IsActive bool   `json:"is_active"`
	// Level is the heading depth (1-4) when the TOC was synthesized from
	// headings; 0 otherwise.
	Level int `json:"level,omitempty"`
}

// Section is one content partition ("slide") of the document.
type Section struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
	// NavRef is the TocEntry ID this section resolves to; set only by
	// reconciliation. Empty means unlinked.
	NavRef string `json:"nav_ref,omitempty"`
}

// AssetRef is a style or script reference collected from the document.
type AssetRef struct {
	// Kind is "inline" (Payload holds the block text) or "external"
	// (Payload holds the href/src verbatim).
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
}

// Asset kinds.
const (
	AssetInline   = "inline"
	AssetExternal = "external"
)

// AnalysisResult is the normalized structure inferred from one document.
// Immutable after construction.
type AnalysisResult struct {
	Title      string     `json:"title"`
	TocEntries []TocEntry `json:"toc_entries"`
	Sections   []Section  `json:"sections"`
	Styles     []AssetRef `json:"styles"`
	Scripts    []AssetRef `json:"scripts"`
}

// Analyzer infers navigation structure from raw HTML text.
// Implementations must never fail for malformed input; they degrade to
// fallback structures instead.
type Analyzer interface {
	Analyze(html string) *AnalysisResult
}

// Renderer converts an AnalysisResult into a final output format.
type Renderer interface {
	Render(result *AnalysisResult) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json").
	Extension() string
}
