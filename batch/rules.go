// Package batch — input filtering rules.
package batch

import (
	"path/filepath"
	"strings"
)

// htmlExtensions are the input formats the pipeline accepts.
var htmlExtensions = map[string]bool{
	".html": true,
	".htm":  true,
}

// IsHTMLFile checks whether a path looks like an HTML document.
func IsHTMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return htmlExtensions[ext]
}

// NormalizePath cleans a submitted path for deduplication.
func NormalizePath(path string) string {
	return filepath.Clean(path)
}
