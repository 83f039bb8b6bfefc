// Package analyze — section title heuristics.
package analyze

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// maxTitleLen is the display budget for section titles; longer titles
	// are cut to 47 runes plus an ellipsis marker.
	maxTitleLen = 50

	untitledSection = "Untitled Section"
)

// titleSelectors is the nested priority search for a section's label.
var titleSelectors = []string{
	".slide-title, .section-title, .concept-title, .content-title",
	"h1, h2, h3, h4, h5, h6",
	`[class*="title"]`,
	"b, strong",
	"header",
}

// extractSectionTitle finds the best label for a section element.
func extractSectionTitle(s *goquery.Selection) string {
	for _, sel := range titleSelectors {
		if t := strings.TrimSpace(s.Find(sel).First().Text()); t != "" {
			return truncateTitle(t)
		}
	}
	if t := leadingText(s.Text()); t != "" {
		return truncateTitle(t)
	}
	return untitledSection
}

// truncateTitle enforces the 50-rune cap: 47 runes plus "...".
func truncateTitle(t string) string {
	r := []rune(t)
	if len(r) <= maxTitleLen {
		return t
	}
	return string(r[:maxTitleLen-3]) + "..."
}

// leadingText derives a title from the first ~40 characters of the
// section's own text, cut at a sentence boundary when one occurs earlier.
func leadingText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}
	r := []rune(text)
	if len(r) > 40 {
		r = r[:40]
	}
	head := string(r)
	if idx := strings.IndexAny(head, ".!?"); idx > 0 {
		head = head[:idx]
	}
	return strings.TrimSpace(head)
}
