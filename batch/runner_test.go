package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gaurav-prasanna/deckparse/core/analyze"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRun_SequentialOrderAndFailureIsolation(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "deck.html",
		`<html><body><nav><ul><li><a href="#a">A</a></li></ul></nav><section id="a"><p>x</p></section></body></html>`)
	unsupported := writeFile(t, dir, "notes.txt", "not html")
	missing := filepath.Join(dir, "gone.html")
	second := writeFile(t, dir, "other.html", `<html><body><p>plain</p></body></html>`)

	r := NewRunner(analyze.New(analyze.Config{}), nil)
	results := r.Run([]string{good, unsupported, missing, second})

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	// Submission order is preserved.
	wantPaths := []string{good, NormalizePath(unsupported), missing, second}
	for i, w := range wantPaths {
		if results[i].Path != w {
			t.Errorf("result[%d]: expected path %q, got %q", i, w, results[i].Path)
		}
	}

	if !results[0].Success {
		t.Errorf("good file should succeed: %s", results[0].Message)
	}
	if results[0].Result == nil || len(results[0].Result.Sections) != 1 {
		t.Error("good file should carry an analysis result")
	}

	if results[1].Success || results[1].Message == "" {
		t.Error("unsupported file should fail with a message")
	}
	if results[2].Success || results[2].Message == "" {
		t.Error("missing file should fail with a message")
	}

	// The batch continued past the failures.
	if !results[3].Success {
		t.Errorf("file after failures should still be processed: %s", results[3].Message)
	}
}

func TestRun_DeduplicatesPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "deck.html", `<html><body><p>x</p></body></html>`)

	r := NewRunner(analyze.New(analyze.Config{}), nil)
	results := r.Run([]string{path, path, path})

	if len(results) != 1 {
		t.Fatalf("expected 1 result for deduplicated path, got %d", len(results))
	}
}

func TestIsHTMLFile(t *testing.T) {
	cases := map[string]bool{
		"deck.html":  true,
		"deck.HTM":   true,
		"notes.txt":  false,
		"deck.html5": false,
		"deck":       false,
	}
	for path, want := range cases {
		if got := IsHTMLFile(path); got != want {
			t.Errorf("IsHTMLFile(%q) = %v, want %v", path, got, want)
		}
	}
}
