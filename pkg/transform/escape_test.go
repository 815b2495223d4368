package transform

import (
	"strings"
	"testing"
)

func TestEscapeMarkdown(t *testing.T) {
	t.Parallel()

	engine := New()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "heading marker",
			content: "# Title",
			want:    `\# Title`,
		},
		{
			name:    "deep heading marker",
			content: "### Title",
			want:    `\### Title`,
		},
		{
			name:    "strong asterisk",
			content: "**bold**",
			want:    `\*\*bold\*\*`,
		},
		{
			name:    "strong underscore",
			content: "__bold__",
			want:    `\_\_bold\_\_`,
		},
		{
			name:    "emphasis asterisk",
			content: "a *em* b",
			want:    `a \*em\* b`,
		},
		{
			name:    "emphasis underscore",
			content: "a _em_ b",
			want:    `a \_em\_ b`,
		},
		{
			name:    "list bullet",
			content: "- item",
			want:    `\- item`,
		},
		{
			name:    "ordered list marker",
			content: "1. item",
			want:    `1\. item`,
		},
		{
			name:    "link opener",
			content: "[link](url)",
			want:    `\[link](url)`,
		},
		{
			name:    "image opener",
			content: "![alt](url)",
			want:    `\!\[alt](url)`,
		},
		{
			name:    "blockquote",
			content: "> quoted",
			want:    `\> quoted`,
		},
		{
			name:    "horizontal rule",
			content: "---",
			want:    `\---`,
		},
		{
			name:    "table pipes",
			content: "a | b",
			want:    `a \| b`,
		},
		{
			name:    "task checkbox",
			content: "- [x] done",
			want:    `\- \[x\] done`,
		},
		{
			name:    "code fence",
			content: "```go",
			want:    "\\```go",
		},
		{
			name:    "stray backtick",
			content: "a ` b",
			want:    "a \\` b",
		},
		{
			name:    "code span is untouched",
			content: "`*not em* _nor this_`",
			want:    "`*not em* _nor this_`",
		},
		{
			name:    "html tag wrapped in code span",
			content: "<div>",
			want:    "`<div>`",
		},
		{
			name:    "closing html tag wrapped",
			content: "x <b>y</b>",
			want:    "x `<b>`y`</b>`",
		},
		{
			name:    "code span wins over tag",
			content: "`<div>` and <span>",
			want:    "`<div>` and `<span>`",
		},
		{
			name:    "plain text unchanged",
			content: "just words here.",
			want:    "just words here.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := engine.escapeMarkdown(tt.content)

			if got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.content, got, tt.want)
			}
			if wantChanged := tt.want != tt.content; changed != wantChanged {
				t.Errorf("changed = %v, want %v", changed, wantChanged)
			}
		})
	}
}

func TestEscapeMarkdownCodeSpanContent(t *testing.T) {
	t.Parallel()

	engine := New()
	span := "`# not a heading, *not em*, [not a link]`"
	content := "before " + span + " after **bold**"

	got, _ := engine.escapeMarkdown(content)

	if !strings.Contains(got, span) {
		t.Errorf("code span content altered: %q", got)
	}
	if !strings.Contains(got, `\*\*bold\*\*`) {
		t.Errorf("content outside span not escaped: %q", got)
	}
}

func TestEscapeMarkdownNoDoubleEscape(t *testing.T) {
	t.Parallel()

	engine := New()

	// Running the escaper over multi-construct input must escape each
	// marker exactly once.
	got, _ := engine.escapeMarkdown("**a** and *b*")

	if strings.Contains(got, `\\`) {
		t.Errorf("double escape produced: %q", got)
	}
	if got != `\*\*a\*\* and \*b\*` {
		t.Errorf("got %q", got)
	}
}
