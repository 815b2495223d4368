package transform

import (
	"regexp"
	"strings"
)

// crlfOrCR normalizes \r\n and bare \r line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// splitLines splits normalized content into lines without line breaks.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// isBlank returns true if the line is empty or contains only whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
