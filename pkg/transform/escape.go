package transform

import (
	"regexp"
	"strings"
)

// inlineCodeSpan matches a non-empty backtick-delimited code span on one line.
// Span content must survive escaping byte for byte.
var inlineCodeSpan = regexp.MustCompile("`[^`\n]+`")

// codeSpanOrTag matches code spans and HTML-tag-like substrings in one pass.
// The code-span alternative comes first so it wins when the two overlap.
var codeSpanOrTag = regexp.MustCompile("(`[^`\n]+`)|(</?[A-Za-z][^<>\n]*>)")

// escapeStep is one ordered rewrite in the markdown escaper.
type escapeStep struct {
	name string
	re   *regexp.Regexp
	tmpl string
}

// escapeSteps neutralize markdown constructs in a fixed order: line-anchored
// constructs first, then inline character classes. Each step skips matches
// inside code spans and matches already preceded by a backslash, so no step
// can double-escape the output of an earlier one.
//
//nolint:gochecknoglobals // Read-only ordered rewrite table.
var escapeSteps = []escapeStep{
	{"heading", regexp.MustCompile(`(?m)^(\s{0,3})(#{1,6})(\s)`), `$1\$2$3`},
	{"task checkbox", regexp.MustCompile(`(?m)^(\s*)([-*+])(\s+)\[([ xX])\]`), `$1\$2$3\[$4\]`},
	{"horizontal rule", regexp.MustCompile(`(?m)^(\s*)(-{3,}|\*{3,}|_{3,})(\s*)$`), `$1\$2$3`},
	{"list bullet", regexp.MustCompile(`(?m)^(\s*)([-*+])(\s)`), `$1\$2$3`},
	{"ordered list", regexp.MustCompile(`(?m)^(\s*)(\d+)\.(\s)`), `$1$2\.$3`},
	{"blockquote", regexp.MustCompile(`(?m)^(\s*)(>)`), `$1\$2`},
	{"code fence", regexp.MustCompile("(?m)^([ \t]*)(`{3,}|~{3,})"), `$1\$2`},
	{"image opener", regexp.MustCompile(`!\[`), `\!\[`},
	{"link opener", regexp.MustCompile(`\[`), `\[`},
	{"strong asterisk", regexp.MustCompile(`\*\*`), `\*\*`},
	{"strong underscore", regexp.MustCompile(`__`), `\_\_`},
	{"emphasis asterisk", regexp.MustCompile(`\*`), `\*`},
	{"emphasis underscore", regexp.MustCompile(`_`), `\_`},
	{"table pipe", regexp.MustCompile(`\|`), `\|`},
	{"backtick", regexp.MustCompile("`+"), `\$0`},
}

// escapeMarkdown neutralizes all markdown-significant syntax with literal
// backslash escapes, leaving inline code spans untouched. A final pass wraps
// bare HTML tags in code spans so the host cannot interpret them as markup.
func (e *Engine) escapeMarkdown(content string) (string, bool) {
	escaped := content
	for _, step := range escapeSteps {
		escaped = applyEscapeStep(escaped, step)
	}
	escaped = wrapHTMLTags(escaped)

	return escaped, escaped != content
}

// applyEscapeStep rewrites every match of one step, skipping matches that
// fall inside a code span or immediately follow a backslash.
func applyEscapeStep(s string, step escapeStep) string {
	matches := step.re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	spans := inlineCodeSpan.FindAllStringIndex(s, -1)

	var b strings.Builder
	b.Grow(len(s) + len(matches)*2)

	last := 0
	for _, m := range matches {
		if m[0] > 0 && s[m[0]-1] == '\\' {
			continue
		}
		if insideSpan(spans, m[0]) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.Write(step.re.ExpandString(nil, step.tmpl, s, m))
		last = m[1]
	}
	b.WriteString(s[last:])

	return b.String()
}

// insideSpan reports whether offset falls within any of the sorted spans.
func insideSpan(spans [][]int, offset int) bool {
	for _, span := range spans {
		if offset >= span[1] {
			continue
		}
		return offset >= span[0]
	}
	return false
}

// wrapHTMLTags scans code spans and HTML-tag-like substrings simultaneously.
// Code spans pass through verbatim; bare tags are wrapped in a code span.
func wrapHTMLTags(s string) string {
	return codeSpanOrTag.ReplaceAllStringFunc(s, func(m string) string {
		if strings.HasPrefix(m, "`") {
			return m
		}
		return "`" + m + "`"
	})
}
