// Package render converts generated markdown into HTML for publishing.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// MarkdownToHTML renders markdown-flavored article text to HTML. Empty input
// renders to an empty string.
func MarkdownToHTML(markdown string) (string, error) {
	if markdown == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
