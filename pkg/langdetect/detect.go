// Package langdetect classifies pasted content as source code and names a
// fence tag for it. The reformatter uses it to fence code pastes verbatim
// instead of rewriting them as markdown.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags for commonly pasted languages.
const (
	TagGo         = "go"
	TagPython     = "python"
	TagJavaScript = "javascript"
	TagJSON       = "json"
	TagYAML       = "yaml"
	TagHTML       = "html"
	TagSQL        = "sql"
	TagRust       = "rust"
	TagDockerfile = "dockerfile"
	TagBash       = "bash"
	TagText       = "text"
)

// classifierCandidates bounds the enry classifier to languages that show up
// in real pastes. An open candidate set makes it guess exotic languages on
// short snippets.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect reports whether content reads as source code, and the fence tag to
// label it with. Markdown-looking or plain prose content is never code.
func Detect(content string) (tag string, isCode bool) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return TagText, false
	}

	raw := []byte(content)

	// A shebang is the strongest signal a paste is a script.
	if lang, ok := enry.GetLanguageByShebang(raw); ok {
		return fenceTag(lang), true
	}

	if tag := probe(trimmed); tag != "" {
		return tag, true
	}

	// The classifier mislabels prose on keyword overlap, so screen it out
	// before asking.
	if looksLikeProse(trimmed) {
		return TagText, false
	}

	if lang, ok := enry.GetLanguageByClassifier(raw, classifierCandidates); ok && lang != "" {
		return fenceTag(lang), true
	}

	return TagText, false
}

// looksLikeProse screens out content that is already markdown or ordinary
// text, which the classifier would otherwise mislabel on keyword overlap.
func looksLikeProse(trimmed string) bool {
	markdownLines := 0
	codeLines := 0
	total := 0

	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		switch {
		case strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#!"),
			strings.HasPrefix(line, "> "),
			strings.HasPrefix(line, "- "),
			strings.HasPrefix(line, "* "),
			strings.HasPrefix(line, "```"):
			markdownLines++
		case strings.HasSuffix(line, "{"),
			strings.HasSuffix(line, ";"),
			strings.HasSuffix(line, ":"):
			codeLines++
		}
	}
	if total == 0 {
		return true
	}
	if markdownLines > 0 && markdownLines >= codeLines {
		return true
	}

	// Sentences of plain words with no code punctuation.
	return codeLines == 0 && !strings.ContainsAny(trimmed, "{}=<>()")
}

// probe checks for patterns specific enough to decide without the
// classifier. Order matters: earlier probes are more definitive.
func probe(trimmed string) string {
	for _, p := range []func(string) string{
		probeGo,
		probePython,
		probeHTML,
		probeJSON,
		probeDockerfile,
		probeSQL,
		probeRust,
		probeJavaScript,
		probeYAML,
	} {
		if tag := p(trimmed); tag != "" {
			return tag
		}
	}
	return ""
}

func probeGo(s string) string {
	if strings.HasPrefix(s, "package ") ||
		(strings.Contains(s, "func ") && strings.Contains(s, ":=")) {
		return TagGo
	}
	return ""
}

func probePython(s string) string {
	if strings.Contains(s, "def ") && strings.Contains(s, "):") {
		return TagPython
	}
	if strings.Contains(s, "__name__") || strings.Contains(s, "__main__") {
		return TagPython
	}
	if strings.HasPrefix(s, "from ") && strings.Contains(s, " import ") {
		return TagPython
	}
	return ""
}

func probeHTML(s string) string {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "<!doctype html") ||
		strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<head>") ||
		strings.Contains(lower, "<body>") {
		return TagHTML
	}
	return ""
}

func probeJSON(s string) string {
	if (strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[")) &&
		strings.Contains(s, `"`) {
		return TagJSON
	}
	return ""
}

func probeDockerfile(s string) string {
	if strings.HasPrefix(s, "FROM ") ||
		(strings.Contains(s, "\nFROM ") && strings.Contains(s, "\nRUN ")) ||
		(strings.Contains(s, "WORKDIR ") && strings.Contains(s, "COPY ")) {
		return TagDockerfile
	}
	return ""
}

func probeSQL(s string) string {
	upper := strings.ToUpper(s)
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, kw) {
			return TagSQL
		}
	}
	return ""
}

func probeRust(s string) string {
	if strings.Contains(s, "fn main()") ||
		strings.Contains(s, "println!") ||
		strings.Contains(s, "let mut ") {
		return TagRust
	}
	return ""
}

func probeJavaScript(s string) string {
	if strings.Contains(s, "console.log") ||
		(strings.Contains(s, "=>") && strings.Contains(s, "const ")) ||
		strings.Contains(s, "function (") ||
		strings.Contains(s, "function(") {
		return TagJavaScript
	}
	return ""
}

// probeYAML counts key: value lines; two or more with no code punctuation
// reads as a YAML document.
func probeYAML(s string) string {
	keys := 0
	for _, line := range bytes.Split([]byte(s), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || bytes.HasPrefix(line, []byte("#")) {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.Contains(line, []byte("(")) &&
			!bytes.Contains(line, []byte("{")) &&
			!bytes.HasPrefix(line, []byte(`"`)) {
			keys++
		}
	}
	if keys >= 2 {
		return TagYAML
	}
	return ""
}

// fenceTag converts an enry language name to a fence tag.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return TagBash
	}
	return strings.ToLower(lang)
}

// Fence wraps content in a fenced code block labeled with tag. Content that
// itself contains a triple-backtick fence gets a longer fence.
func Fence(content, tag string) string {
	fence := "```"
	for strings.Contains(content, fence) {
		fence += "`"
	}

	var b strings.Builder
	b.WriteString(fence)
	b.WriteString(tag)
	b.WriteString("\n")
	b.WriteString(content)
	if !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(fence)
	b.WriteString("\n")
	return b.String()
}
