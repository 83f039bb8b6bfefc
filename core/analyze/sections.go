// Package analyze — section extraction.
// Unlike TOC extraction, adoption here is on the raw match count of the
// selector: the pattern that finds the most elements wins, and ids/titles
// are derived afterwards from the adopted set.
package analyze

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/deckparse/core"
)

// extractSections runs the candidate fold over section-shaped patterns,
// falling back to a single whole-body section.
func (a *StructuralAnalyzer) extractSections(doc *goquery.Document, docTitle string) []core.Section {
	patterns := append(append([]Pattern{}, sectionPatterns...), a.cfg.ExtraSectionPatterns...)

	bestCount := 0
	var best *goquery.Selection

	for _, p := range patterns {
		sel, ok := a.query(doc, p)
		if !ok {
			continue
		}
		if sel.Length() > bestCount {
			bestCount = sel.Length()
			best = sel
		}
	}

	if best == nil {
		return a.fallbackSection(doc, docTitle)
	}
	return a.deriveSections(best)
}

func (a *StructuralAnalyzer) deriveSections(sel *goquery.Selection) []core.Section {
	sections := make([]core.Section, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		content, err := goquery.OuterHtml(s)
		if err != nil {
			a.cfg.Logger.Warn("serializing section", "index", i, "error", err)
		}
		sections = append(sections, core.Section{
			ID:       sectionID(s, i),
			Title:    extractSectionTitle(s),
			Content:  content,
			IsActive: s.HasClass("active"),
		})
	})
	return sections
}

// sectionID prefers the element's own id, then data attributes, then a
// synthesized positional id.
func sectionID(s *goquery.Selection, idx int) string {
	if id := strings.TrimSpace(s.AttrOr("id", "")); id != "" {
		return id
	}
	for _, attr := range []string{"data-slide", "data-id"} {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return fmt.Sprintf("slide-%d", idx+1)
}

// fallbackSection treats the whole body as one active section, preferring
// a top-level <main>, then a top-level <div>, then <body> itself.
func (a *StructuralAnalyzer) fallbackSection(doc *goquery.Document, docTitle string) []core.Section {
	var container *goquery.Selection
	for _, sel := range []string{"body > main", "body > div", "body"} {
		if s := doc.Find(sel); s.Length() > 0 {
			container = s.First()
			break
		}
	}
	if container == nil {
		return nil
	}

	content, err := goquery.OuterHtml(container)
	if err != nil {
		a.cfg.Logger.Warn("serializing fallback section", "error", err)
	}

	title := docTitle
	if title == "" {
		title = untitledSection
	}

	return []core.Section{{
		ID:       "slide-1",
		Title:    truncateTitle(title),
		Content:  content,
		IsActive: true,
	}}
}
