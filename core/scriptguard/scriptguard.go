// Package scriptguard filters document-supplied scripts and markup before
// a host displays them.
//
// Check is a textual pattern match over script source, not a sandbox: it is
// advisory filtering only. A script touching anything on the denylist is
// skipped entirely rather than executed. Hosts that actually run document
// scripts should isolate them in a separate process or restricted
// interpreter instead of relying on this.
package scriptguard

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// denyRule pairs a human-readable reason with the source pattern it blocks.
type denyRule struct {
	Reason  string
	Pattern *regexp.Regexp
}

var denyRules = []denyRule{
	{"network access", regexp.MustCompile(`(?i)\b(fetch|XMLHttpRequest|WebSocket|sendBeacon|EventSource)\b`)},
	{"storage access", regexp.MustCompile(`(?i)(\blocalStorage\b|\bsessionStorage\b|\bindexedDB\b|document\.cookie)`)},
	{"cross-frame access", regexp.MustCompile(`(?i)(window\.(parent|top|frames)|\bframeElement\b|\bpostMessage\b)`)},
	{"dynamic code evaluation", regexp.MustCompile(`(?i)(\beval\s*\(|new\s+Function|set(Timeout|Interval)\s*\(\s*['"])`)},
	{"navigation", regexp.MustCompile(`(?i)(window\.open|location\.(href|assign|replace)|document\.location)`)},
}

// Check reports whether a script source passes the denylist. When it does
// not, reason names the first matched category.
func Check(src string) (ok bool, reason string) {
	for _, rule := range denyRules {
		if rule.Pattern.MatchString(src) {
			return false, rule.Reason
		}
	}
	return true, ""
}

// contentPolicy keeps structural attributes so reconciled ids survive
// sanitization.
var contentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("id", "class").Globally()
	return p
}()

// SanitizeContent strips dangerous markup from a section's content before
// display. Scripts, event handlers, and embedded frames are removed.
func SanitizeContent(html string) string {
	return contentPolicy.Sanitize(html)
}
