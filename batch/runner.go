// Package batch processes submitted files strictly one at a time, in
// submission order. A file is fully analyzed before the next one starts,
// so consumers never observe interleaved partial results. Per-file
// failures are recorded and the batch continues; there is no mid-file
// cancellation.
package batch

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/deckparse/core"
)

// FileResult is the outcome of processing one submitted file.
type FileResult struct {
	Path    string               `json:"path"`
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Result  *core.AnalysisResult `json:"result,omitempty"`
}

// Runner drives the sequential batch pipeline.
type Runner struct {
	analyzer core.Analyzer
	log      *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(analyzer core.Analyzer, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{analyzer: analyzer, log: log}
}

// Run processes every submitted path, deduplicated, in order. It always
// returns one FileResult per unique path; failures never abort the batch.
func (r *Runner) Run(paths []string) []FileResult {
	q := NewQueue()
	for _, p := range paths {
		q.Add(NormalizePath(p))
	}

	results := make([]FileResult, 0, q.Len())
	for q.HasNext() {
		results = append(results, r.processFile(q.Next()))
	}
	return results
}

func (r *Runner) processFile(path string) FileResult {
	if !IsHTMLFile(path) {
		r.log.Warn("skipping unsupported file", "path", path)
		return FileResult{Path: path, Message: "unsupported file type (expected .html or .htm)"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		r.log.Warn("reading file", "path", path, "error", err)
		return FileResult{Path: path, Message: fmt.Sprintf("reading file: %v", err)}
	}

	result := r.analyzer.Analyze(string(data))
	r.log.Info("analyzed document",
		"path", path,
		"toc_entries", len(result.TocEntries),
		"sections", len(result.Sections),
	)
	return FileResult{Path: path, Success: true, Result: result}
}
