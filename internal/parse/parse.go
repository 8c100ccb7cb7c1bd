// Package parse shapes raw generated text into structured results.
package parse

import (
	"regexp"
	"strings"
)

// enumPrefix matches a leading "<digits>. " enumeration marker that models
// tend to emit despite instructions not to.
var enumPrefix = regexp.MustCompile(`^\d+\.\s*`)

// Titles splits raw generated text into an ordered, deduplicated title list.
// Each line is stripped of a leading enumeration marker and trimmed; empty
// lines are dropped and duplicates keep their first-seen position. When no
// usable line remains but the raw text is non-empty, the whole trimmed text
// becomes a single-element result. Empty input yields an empty, non-nil
// slice.
func Titles(raw string) []string {
	titles := []string{}
	seen := make(map[string]struct{})

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimSpace(enumPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		titles = append(titles, line)
	}

	if len(titles) == 0 {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}

	return titles
}

// Article passes article text through unchanged. Markdown rendering and
// sanitization belong to the rendering layer; the only guarantee here is that
// the result is always a string, empty when generation yielded nothing.
func Article(raw string) string {
	return raw
}
