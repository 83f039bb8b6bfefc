package analyze

import (
	"reflect"
	"strings"
	"testing"
)

func TestAnalyze_NavAndSections(t *testing.T) {
	input := `<html><body>
<nav><ul>
<li><a href="#intro">Intro</a></li>
<li><a href="#detail">Detail</a></li>
</ul></nav>
<section id="intro"><h2>Introduction</h2><p>Welcome.</p></section>
<section id="detail"><h2>Details</h2><p>More.</p></section>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 2 {
		t.Fatalf("expected 2 TOC entries, got %d", len(result.TocEntries))
	}
	wantIDs := []string{"intro", "detail"}
	wantTexts := []string{"Intro", "Detail"}
	for i, e := range result.TocEntries {
		if e.ID != wantIDs[i] {
			t.Errorf("entry[%d]: expected id %q, got %q", i, wantIDs[i], e.ID)
		}
		if e.Text != wantTexts[i] {
			t.Errorf("entry[%d]: expected text %q, got %q", i, wantTexts[i], e.Text)
		}
	}

	if len(result.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(result.Sections))
	}
	for i, s := range result.Sections {
		if s.ID != wantIDs[i] {
			t.Errorf("section[%d]: expected id %q, got %q", i, wantIDs[i], s.ID)
		}
		if s.NavRef != wantIDs[i] {
			t.Errorf("section[%d]: expected nav ref %q, got %q", i, wantIDs[i], s.NavRef)
		}
	}
	if result.Sections[0].Title != "Introduction" {
		t.Errorf("expected section title %q, got %q", "Introduction", result.Sections[0].Title)
	}
}

func TestAnalyze_HeadingFallback(t *testing.T) {
	input := `<html><head><title>Doc</title></head><body>
<h1>Chapter One</h1><p>text</p>
<h2>Part A</h2><p>text</p>
<h3>Sub Part</h3><p>text</p>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 3 {
		t.Fatalf("expected 3 heading entries, got %d", len(result.TocEntries))
	}

	want := []struct {
		id    string
		text  string
		level int
	}{
		{"heading-1", "Chapter One", 1},
		{"heading-2", "Part A", 2},
		{"heading-3", "Sub Part", 3},
	}
	for i, w := range want {
		e := result.TocEntries[i]
		if e.ID != w.id || e.Text != w.text || e.Level != w.level {
			t.Errorf("entry[%d]: got %+v, want %+v", i, e, w)
		}
	}
	if !result.TocEntries[0].IsActive {
		t.Error("first heading entry should be active")
	}
	if result.TocEntries[1].IsActive {
		t.Error("second heading entry should not be active")
	}

	// The synthesized ids must be written back into the document so the
	// serialized section content can be anchored.
	if len(result.Sections) != 1 {
		t.Fatalf("expected fallback single section, got %d", len(result.Sections))
	}
	if !strings.Contains(result.Sections[0].Content, `id="heading-1"`) {
		t.Error("fallback section content missing synthesized heading anchor")
	}
}

func TestAnalyze_NoStructureFallsBackToSingleSection(t *testing.T) {
	input := `<html><head><title>Plain Page</title></head><body><p>just a paragraph</p></body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 0 {
		t.Fatalf("expected empty TOC, got %d entries", len(result.TocEntries))
	}
	if len(result.Sections) != 1 {
		t.Fatalf("expected exactly 1 fallback section, got %d", len(result.Sections))
	}
	s := result.Sections[0]
	if s.ID != "slide-1" {
		t.Errorf("expected fallback id %q, got %q", "slide-1", s.ID)
	}
	if s.Title != "Plain Page" {
		t.Errorf("expected fallback title from document title, got %q", s.Title)
	}
	if !s.IsActive {
		t.Error("fallback section should be active")
	}
	if !strings.Contains(s.Content, "just a paragraph") {
		t.Error("fallback section should contain the body content")
	}
}

func TestAnalyze_SlideDeck(t *testing.T) {
	input := `<html><body>
<div class="sidebar-menu">
<ul>
<li class="active" data-target="one"><i class="icon icon-home"></i>▸ First</li>
<li data-target="two">▸ Second</li>
<li data-target="three">▸ Third</li>
</ul>
</div>
<div class="slide active" id="slide-one"><div class="slide-title">Opening</div><p>a</p></div>
<div class="slide" id="slide-two"><div class="slide-title">Middle</div><p>b</p></div>
<div class="slide" id="slide-three"><div class="slide-title">Closing</div><p>c</p></div>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 3 {
		t.Fatalf("expected 3 TOC entries, got %d", len(result.TocEntries))
	}
	e := result.TocEntries[0]
	if e.ID != "one" {
		t.Errorf("expected data-target id %q, got %q", "one", e.ID)
	}
	if e.Text != "First" {
		t.Errorf("expected decorative characters stripped, got %q", e.Text)
	}
	if !e.IsActive {
		t.Error("first entry should be active")
	}
	if e.IconRef != "icon icon-home" {
		t.Errorf("expected icon ref %q, got %q", "icon icon-home", e.IconRef)
	}

	if len(result.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(result.Sections))
	}
	if result.Sections[0].Title != "Opening" {
		t.Errorf("expected slide-title class to win, got %q", result.Sections[0].Title)
	}
	if !result.Sections[0].IsActive {
		t.Error("first slide should be active")
	}

	// Counts are equal, so linking is positional.
	for i, wantRef := range []string{"one", "two", "three"} {
		if result.Sections[i].NavRef != wantRef {
			t.Errorf("section[%d]: expected nav ref %q, got %q", i, wantRef, result.Sections[i].NavRef)
		}
	}
}

func TestAnalyze_SlidePrefixReconciliation(t *testing.T) {
	// 2 TOC entries, 3 sections: counts differ, so linking is by id with
	// the slide- prefix transform.
	input := `<html><body>
<nav><ul>
<li><a href="#intro">Intro</a></li>
<li><a href="#wrap">Wrap</a></li>
</ul></nav>
<section id="slide-intro"><p>a</p></section>
<section id="slide-wrap"><p>b</p></section>
<section id="extra"><p>c</p></section>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 2 || len(result.Sections) != 3 {
		t.Fatalf("expected 2 entries / 3 sections, got %d / %d",
			len(result.TocEntries), len(result.Sections))
	}
	if result.Sections[0].NavRef != "intro" {
		t.Errorf("expected slide-intro linked to intro, got %q", result.Sections[0].NavRef)
	}
	if result.Sections[1].NavRef != "wrap" {
		t.Errorf("expected slide-wrap linked to wrap, got %q", result.Sections[1].NavRef)
	}
	if result.Sections[2].NavRef != "" {
		t.Errorf("expected unmatched section to stay unlinked, got %q", result.Sections[2].NavRef)
	}
}

func TestAnalyze_TitleTruncation(t *testing.T) {
	long := strings.Repeat("abcde ", 12) // 72 chars
	input := `<html><body><section><h2>` + long + `</h2><p>x</p></section></body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(result.Sections))
	}
	title := result.Sections[0].Title
	if got := len([]rune(title)); got != 50 {
		t.Fatalf("expected truncated title of 50 runes, got %d (%q)", got, title)
	}
	if !strings.HasSuffix(title, "...") {
		t.Errorf("expected ellipsis marker, got %q", title)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	input := `<html><head><title>Deck</title></head><body>
<nav><ul><li><a href="#a">A</a></li><li><a href="#b">B</a></li></ul></nav>
<section id="a"><h2>Alpha</h2></section>
<section id="b"><h2>Beta</h2></section>
<style>.x{color:red}</style>
<script>console.log("hi")</script>
</body></html>`

	a := New(Config{})
	first := a.Analyze(input)
	second := a.Analyze(input)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("analysis is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAnalyze_Assets(t *testing.T) {
	input := `<html><head>
<link rel="stylesheet" href="theme.css">
<style>body{margin:0}</style>
</head><body>
<section id="a"><p>x</p></section>
<script src="app.js"></script>
<script>init();</script>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.Styles) != 2 {
		t.Fatalf("expected 2 style refs, got %d", len(result.Styles))
	}
	if result.Styles[0].Kind != "inline" || !strings.Contains(result.Styles[0].Payload, "margin:0") {
		t.Errorf("unexpected inline style ref: %+v", result.Styles[0])
	}
	if result.Styles[1].Kind != "external" || result.Styles[1].Payload != "theme.css" {
		t.Errorf("unexpected external style ref: %+v", result.Styles[1])
	}

	if len(result.Scripts) != 2 {
		t.Fatalf("expected 2 script refs, got %d", len(result.Scripts))
	}
	if result.Scripts[0].Kind != "external" || result.Scripts[0].Payload != "app.js" {
		t.Errorf("unexpected external script ref: %+v", result.Scripts[0])
	}
	if result.Scripts[1].Kind != "inline" || !strings.Contains(result.Scripts[1].Payload, "init()") {
		t.Errorf("unexpected inline script ref: %+v", result.Scripts[1])
	}
}

func TestAnalyze_BrokenExtraPatternIsSkipped(t *testing.T) {
	input := `<html><body>
<nav><ul><li><a href="#a">A</a></li></ul></nav>
<section id="a"><p>x</p></section>
</body></html>`

	a := New(Config{
		ExtraTocPatterns:     []Pattern{{Name: "broken", Selector: "li[["}},
		ExtraSectionPatterns: []Pattern{{Name: "broken", Selector: ")("}},
	})
	result := a.Analyze(input)

	if len(result.TocEntries) != 1 {
		t.Fatalf("broken pattern must not affect analysis, got %d entries", len(result.TocEntries))
	}
	if len(result.Sections) != 1 {
		t.Fatalf("broken pattern must not affect analysis, got %d sections", len(result.Sections))
	}
}

func TestAnalyze_BestCountWins(t *testing.T) {
	// The sidebar has more items than the plain nav: the larger candidate
	// set must be adopted even though the nav pattern is tried too.
	input := `<html><body>
<nav><ul><li><a href="#a">A</a></li><li><a href="#b">B</a></li></ul></nav>
<div class="sidebar-menu"><ul>
<li><a href="#a">A</a></li>
<li><a href="#b">B</a></li>
<li><a href="#c">C</a></li>
<li><a href="#d">D</a></li>
</ul></div>
</body></html>`

	result := New(Config{}).Analyze(input)

	if len(result.TocEntries) != 4 {
		t.Fatalf("expected the larger candidate set (4), got %d", len(result.TocEntries))
	}
}

func TestHeadingLevel(t *testing.T) {
	cases := map[string]int{"h1": 1, "h4": 4, "h6": 6, "div": 0, "header": 0, "": 0}
	for tag, want := range cases {
		if got := headingLevel(tag); got != want {
			t.Errorf("headingLevel(%q) = %d, want %d", tag, got, want)
		}
	}
}
