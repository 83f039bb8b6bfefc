// Package analyze — style/script collection.
// Payloads are collected verbatim and tagged by kind; nothing is executed
// or validated at this stage.
package analyze

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/deckparse/core"
)

// extractAssets collects inline style/script blocks and external
// stylesheet/script references.
func extractAssets(doc *goquery.Document) (styles, scripts []core.AssetRef) {
	doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		styles = append(styles, core.AssetRef{Kind: core.AssetInline, Payload: s.Text()})
	})
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		if href := strings.TrimSpace(s.AttrOr("href", "")); href != "" {
			styles = append(styles, core.AssetRef{Kind: core.AssetExternal, Payload: href})
		}
	})

	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if src := strings.TrimSpace(s.AttrOr("src", "")); src != "" {
			scripts = append(scripts, core.AssetRef{Kind: core.AssetExternal, Payload: src})
			return
		}
		scripts = append(scripts, core.AssetRef{Kind: core.AssetInline, Payload: s.Text()})
	})

	return styles, scripts
}
