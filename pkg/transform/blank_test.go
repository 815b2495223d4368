package transform

import (
	"strings"
	"testing"
)

func TestCollapseBlankRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		want        string
		wantChanged bool
	}{
		{
			name:        "three breaks collapse to two",
			content:     "a\n\n\nb",
			want:        "a\n\nb",
			wantChanged: true,
		},
		{
			name:        "long run collapses to two",
			content:     "a\n\n\n\n\n\nb",
			want:        "a\n\nb",
			wantChanged: true,
		},
		{
			name:        "single blank line untouched",
			content:     "a\n\nb",
			want:        "a\n\nb",
			wantChanged: false,
		},
		{
			name:        "crlf input is normalized",
			content:     "a\r\n\r\n\r\nb",
			want:        "a\n\nb",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := collapseBlankRuns(tt.content)

			if got != tt.want {
				t.Errorf("collapseBlankRuns(%q) = %q, want %q", tt.content, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestCollapseBlankRunsBound(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a\n\n\nb\n\n\n\nc",
		"\n\n\n\n",
		"x\r\n\r\n\r\n\r\ny",
	}

	for _, input := range inputs {
		got, _ := collapseBlankRuns(input)
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("run of 3+ breaks survived in %q", got)
		}
	}
}

func TestFilterEmptyLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		preserve    bool
		want        string
		wantChanged bool
	}{
		{
			name:        "blank after heading preserved",
			content:     "# Heading\n\ntext",
			want:        "# Heading\n\ntext",
			wantChanged: false,
		},
		{
			name:        "blank before horizontal rule preserved",
			content:     "a\n\n---\n",
			want:        "a\n\n---",
			wantChanged: true,
		},
		{
			name:        "blank before table row preserved",
			content:     "a\n\n| x | y |",
			want:        "a\n\n| x | y |",
			wantChanged: false,
		},
		{
			name:        "unprotected blanks dropped",
			content:     "a\n\n\nb",
			want:        "a\nb",
			wantChanged: true,
		},
		{
			name:        "whitespace-only lines count as blank",
			content:     "a\n \t\nb",
			want:        "a\nb",
			wantChanged: true,
		},
		{
			name:        "preserve marker becomes blank line",
			content:     `a` + "\n" + `<p class="preserve-line-break"></p>` + "\n" + `b`,
			preserve:    true,
			want:        "a\n\nb",
			wantChanged: true,
		},
		{
			name:        "data attribute marker becomes blank line",
			content:     "a\n<p data-preserve=\"true\"></p>\nb",
			preserve:    true,
			want:        "a\n\nb",
			wantChanged: true,
		},
		{
			name:        "marker kept literally when line breaks are stripped",
			content:     `a` + "\n" + `<p class="preserve-line-break"></p>` + "\n" + `b`,
			preserve:    false,
			want:        "a\n<p class=\"preserve-line-break\"></p>\nb",
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, changed := filterEmptyLines(tt.content, tt.preserve)

			if got != tt.want {
				t.Errorf("filterEmptyLines(%q) = %q, want %q", tt.content, got, tt.want)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}
