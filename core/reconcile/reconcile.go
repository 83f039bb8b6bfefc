// Package reconcile links inferred TOC entries to inferred sections.
// It is a pure post-pass over the two already-built lists: equal counts
// link positionally, otherwise entries are matched by id (exact, or under
// a "slide-"/"slide" prefix transform). Unmatched entries and sections
// stay unlinked; that is expected, not an error.
package reconcile

import "github.com/gaurav-prasanna/deckparse/core"

// Link returns a copy of sections with NavRef assigned where a TOC entry
// resolves to the section. The inputs are not modified.
func Link(entries []core.TocEntry, sections []core.Section) []core.Section {
	out := make([]core.Section, len(sections))
	copy(out, sections)

	if len(entries) == 0 || len(sections) == 0 {
		return out
	}

	if len(entries) == len(sections) {
		for i := range out {
			out[i].NavRef = entries[i].ID
		}
		return out
	}

	for _, e := range entries {
		for i := range out {
			if matches(out[i].ID, e.ID) {
				out[i].NavRef = e.ID
				break
			}
		}
	}
	return out
}

// matches reports whether a section id resolves to a TOC entry id,
// directly or under the slide-prefix transform.
func matches(sectionID, entryID string) bool {
	return sectionID == entryID ||
		sectionID == "slide-"+entryID ||
		sectionID == "slide"+entryID
}
