// Package analyze — TOC extraction.
// Candidate patterns are folded over with an explicit {bestCount, bestEntries}
// accumulator: a pattern is adopted only when its count of valid entries
// strictly exceeds the running best, so earlier (more specific) patterns win
// ties. When no pattern yields anything, a TOC is synthesized from headings.
package analyze

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/deckparse/core"
)

// leadingDecor matches leading bullet/symbol characters stripped from labels.
var leadingDecor = regexp.MustCompile(`^[^\p{L}\p{N}]+`)

// extractTOC runs the candidate fold, falling back to heading synthesis.
func (a *StructuralAnalyzer) extractTOC(doc *goquery.Document) []core.TocEntry {
	patterns := append(append([]Pattern{}, tocPatterns...), a.cfg.ExtraTocPatterns...)

	bestCount := 0
	var bestEntries []core.TocEntry

	for _, p := range patterns {
		sel, ok := a.query(doc, p)
		if !ok || sel.Length() <= bestCount {
			continue
		}
		valid := validEntries(deriveTocEntries(sel))
		if len(valid) > bestCount {
			bestCount = len(valid)
			bestEntries = valid
		}
	}

	if len(bestEntries) > 0 {
		return bestEntries
	}
	return a.tocFromHeadings(doc)
}

// deriveTocEntries builds one entry per matched item.
func deriveTocEntries(sel *goquery.Selection) []core.TocEntry {
	entries := make([]core.TocEntry, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		entries = append(entries, deriveTocEntry(s, i))
	})
	return entries
}

func deriveTocEntry(s *goquery.Selection, idx int) core.TocEntry {
	link := s
	if !s.Is("a") {
		link = s.Find("a").First()
	}

	id := entryID(s, link, idx)

	text := strings.TrimSpace(link.Text())
	if text == "" {
		text = strings.TrimSpace(s.Text())
	}
	text = strings.TrimSpace(leadingDecor.ReplaceAllString(text, ""))
	if text == "" && id != "" {
		text = "item " + id
	}

	return core.TocEntry{
		ID:       id,
		Text:     text,
		IconRef:  iconRef(s),
		IsActive: isActive(s),
	}
}

// entryID derives the stable identifier for a TOC item, in priority order:
// explicit navigation attribute, anchor-link target, own id containing a
// structural keyword, synthesized positional id.
func entryID(s, link *goquery.Selection, idx int) string {
	for _, attr := range []string{"data-target", "data-slide"} {
		if v := strings.TrimSpace(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	if href, ok := link.Attr("href"); ok && strings.HasPrefix(href, "#") && len(href) > 1 {
		return href[1:]
	}
	if own := s.AttrOr("id", ""); own != "" && hasStructuralKeyword(own) {
		return own
	}
	return fmt.Sprintf("slide-%d", idx+1)
}

func hasStructuralKeyword(id string) bool {
	lower := strings.ToLower(id)
	for _, kw := range []string{"slide", "section", "nav"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func iconRef(s *goquery.Selection) string {
	icon := s.Find(`i, .icon, [class*="icon"]`).First()
	return icon.AttrOr("class", "")
}

func isActive(s *goquery.Selection) bool {
	return s.HasClass("active") || s.AttrOr("aria-current", "") != ""
}

// validEntries drops entries lacking an id or a label.
func validEntries(entries []core.TocEntry) []core.TocEntry {
	valid := make([]core.TocEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != "" && e.Text != "" {
			valid = append(valid, e)
		}
	}
	return valid
}

// tocFromHeadings synthesizes a TOC from h1-h4 in document order. The
// synthesized id is assigned back onto the heading element so section
// content serialized later carries the anchor.
func (a *StructuralAnalyzer) tocFromHeadings(doc *goquery.Document) []core.TocEntry {
	var entries []core.TocEntry
	doc.Find("h1, h2, h3, h4").Each(func(i int, s *goquery.Selection) {
		id := fmt.Sprintf("heading-%d", i+1)
		s.SetAttr("id", id)

		text := strings.TrimSpace(s.Text())
		if text == "" {
			text = "item " + id
		}

		entries = append(entries, core.TocEntry{
			ID:       id,
			Text:     text,
			IsActive: i == 0,
			Level:    headingLevel(goquery.NodeName(s)),
		})
	})
	return entries
}

// headingLevel returns the numeric depth of an hN tag name, 0 otherwise.
func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}
