// Package analyze implements the Structural Analyzer.
// It takes raw HTML text and infers a table of contents and a partitioning
// of the body into sections, by trying ordered lists of candidate selector
// patterns and keeping whichever yields the most matches. The analyzer
// never fails: malformed input and broken selectors degrade to documented
// fallbacks.
package analyze

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/gaurav-prasanna/deckparse/core"
	"github.com/gaurav-prasanna/deckparse/core/reconcile"
)

// Config configures a StructuralAnalyzer.
type Config struct {
	// Logger for per-candidate failures. Defaults to slog.Default().
	Logger *slog.Logger

	// ExtraTocPatterns are appended after the built-in TOC patterns.
	ExtraTocPatterns []Pattern

	// ExtraSectionPatterns are appended after the built-in section patterns.
	ExtraSectionPatterns []Pattern
}

func (c *Config) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// StructuralAnalyzer implements core.Analyzer over goquery documents.
type StructuralAnalyzer struct {
	cfg Config
}

// New creates a StructuralAnalyzer.
func New(cfg Config) *StructuralAnalyzer {
	cfg.defaults()
	return &StructuralAnalyzer{cfg: cfg}
}

// Analyze parses the document and runs TOC extraction, section extraction,
// asset collection, and reconciliation. It always returns a well-formed
// result; the only way to get an empty one is input that cannot be parsed
// at all.
func (a *StructuralAnalyzer) Analyze(html string) *core.AnalysisResult {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		a.cfg.Logger.Warn("parsing document", "error", err)
		return &core.AnalysisResult{}
	}

	title := documentTitle(doc)

	// TOC first: the heading fallback assigns ids onto heading elements,
	// and section content serialized afterwards must carry those anchors.
	entries := a.extractTOC(doc)
	sections := a.extractSections(doc, title)
	styles, scripts := extractAssets(doc)

	sections = reconcile.Link(entries, sections)

	return &core.AnalysisResult{
		Title:      title,
		TocEntries: entries,
		Sections:   sections,
		Styles:     styles,
		Scripts:    scripts,
	}
}

// query compiles and runs one candidate selector. A selector that fails to
// compile is a recoverable per-candidate failure: logged, never fatal.
func (a *StructuralAnalyzer) query(doc *goquery.Document, p Pattern) (*goquery.Selection, bool) {
	m, err := cascadia.Compile(p.Selector)
	if err != nil {
		a.cfg.Logger.Warn("skipping candidate pattern", "pattern", p.Name, "error", err)
		return nil, false
	}
	return doc.FindMatcher(m), true
}

// documentTitle prefers the <title> tag, then the first h1.
func documentTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
