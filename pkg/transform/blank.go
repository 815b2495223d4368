package transform

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the blank-line stages.
var (
	// Compress runs of 3+ line breaks to max one blank line.
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Horizontal rule: 3+ dashes, optionally surrounded by whitespace.
	horizontalRule = regexp.MustCompile(`^\s*-{3,}\s*$`)

	// Start of a table row: optional whitespace, then pipe-delimited content.
	tableRowStart = regexp.MustCompile(`^\s*\|.*\|`)

	// ATX heading line.
	headingLine = regexp.MustCompile(`^#{1,6}\s`)

	// Paragraph-like element that explicitly asks for its line break to
	// survive blank-line removal.
	preserveMarker = regexp.MustCompile(`(?i)<p\b[^>]*(?:class="[^"]*preserve-line-break[^"]*"|data-preserve="true")[^>]*>`)
)

// collapseBlankRuns normalizes line endings and reduces any run of 3+
// consecutive line breaks to exactly one blank line.
func collapseBlankRuns(content string) (string, bool) {
	normalized := normalizeLineEndings(content)
	collapsed := multipleBlankLines.ReplaceAllString(normalized, "\n\n")
	return collapsed, collapsed != normalized
}

// filterEmptyLines removes blank lines in a single forward pass with one-line
// lookback and lookahead over the original sequence. Blank lines survive when
// the next line is a horizontal rule or table row, or the previous line is a
// heading. When preserveLineBreaks is set, preserve-marker lines are replaced
// by a literal blank line.
func filterEmptyLines(content string, preserveLineBreaks bool) (string, bool) {
	normalized := normalizeLineEndings(content)
	lines := splitLines(normalized)
	kept := make([]string, 0, len(lines))

	for i, line := range lines {
		var prev, next string
		if i > 0 {
			prev = lines[i-1]
		}
		if i < len(lines)-1 {
			next = lines[i+1]
		}

		switch {
		case preserveLineBreaks && preserveMarker.MatchString(line):
			kept = append(kept, "")
		case isBlank(line) && horizontalRule.MatchString(next):
			kept = append(kept, line)
		case isBlank(line) && tableRowStart.MatchString(next):
			kept = append(kept, line)
		case isBlank(line) && headingLine.MatchString(prev):
			kept = append(kept, line)
		case !isBlank(line):
			kept = append(kept, line)
		}
	}

	filtered := strings.Join(kept, "\n")
	return filtered, filtered != normalized
}
