package render

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		contains []string
	}{
		{
			name:     "heading and paragraph",
			markdown: "# Judul Artikel\n\nParagraf pembuka berita.",
			contains: []string{"<h1>Judul Artikel</h1>", "<p>Paragraf pembuka berita.</p>"},
		},
		{
			name:     "emphasis",
			markdown: "Berita **penting** hari ini.",
			contains: []string{"<strong>penting</strong>"},
		},
		{
			name:     "list",
			markdown: "- pertama\n- kedua",
			contains: []string{"<ul>", "<li>pertama</li>", "<li>kedua</li>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.markdown)
			if err != nil {
				t.Fatalf("MarkdownToHTML() unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestMarkdownToHTMLEmptyInput(t *testing.T) {
	got, err := MarkdownToHTML("")
	if err != nil {
		t.Fatalf("MarkdownToHTML(\"\") unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("MarkdownToHTML(\"\") = %q, want empty", got)
	}
}
