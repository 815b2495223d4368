package langdetect

import (
	"strings"
	"testing"
)

func TestDetectCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantTag string
	}{
		{
			name:    "go package clause",
			content: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n",
			wantTag: TagGo,
		},
		{
			name:    "python def",
			content: "def greet(name):\n    return f\"hello {name}\"\n",
			wantTag: TagPython,
		},
		{
			name:    "shebang",
			content: "#!/bin/bash\necho hi\n",
			wantTag: TagBash,
		},
		{
			name:    "json object",
			content: "{\n  \"name\": \"pastemd\",\n  \"version\": 1\n}\n",
			wantTag: TagJSON,
		},
		{
			name:    "sql select",
			content: "SELECT id, name FROM users WHERE active = 1;\n",
			wantTag: TagSQL,
		},
		{
			name:    "dockerfile",
			content: "FROM golang:1.25\nRUN go build ./...\n",
			wantTag: TagDockerfile,
		},
		{
			name:    "rust main",
			content: "fn main() {\n    println!(\"hi\");\n}\n",
			wantTag: TagRust,
		},
		{
			name:    "yaml document",
			content: "name: pastemd\nversion: 1\nitems:\n  - one\n",
			wantTag: TagYAML,
		},
		{
			name:    "html document",
			content: "<!DOCTYPE html>\n<html>\n<body></body>\n</html>\n",
			wantTag: TagHTML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tag, isCode := Detect(tt.content)
			if !isCode {
				t.Fatalf("Detect(%q) isCode = false, want true", tt.content)
			}
			if tag != tt.wantTag {
				t.Errorf("Detect(%q) tag = %q, want %q", tt.content, tag, tt.wantTag)
			}
		})
	}
}

func TestDetectNotCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace only", content: "  \n\t\n"},
		{name: "plain prose", content: "This is a short note about the meeting yesterday.\nWe agreed to ship on Friday.\n"},
		{name: "markdown heading", content: "# Release notes\n\nShipped the new importer.\n"},
		{name: "markdown list", content: "- first item\n- second item\n- third item\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tag, isCode := Detect(tt.content)
			if isCode {
				t.Errorf("Detect(%q) = (%q, true), want not code", tt.content, tag)
			}
			if tag != TagText {
				t.Errorf("Detect(%q) tag = %q, want %q", tt.content, tag, TagText)
			}
		})
	}
}

func TestFence(t *testing.T) {
	t.Parallel()

	got := Fence("package main\n", TagGo)
	want := "```go\npackage main\n```\n"
	if got != want {
		t.Errorf("Fence = %q, want %q", got, want)
	}
}

func TestFenceAddsTrailingNewline(t *testing.T) {
	t.Parallel()

	got := Fence("SELECT 1;", TagSQL)
	if !strings.HasSuffix(got, "SELECT 1;\n```\n") {
		t.Errorf("Fence = %q, want newline before closing fence", got)
	}
}

func TestFenceLengthens(t *testing.T) {
	t.Parallel()

	got := Fence("```go\ncode\n```\n", TagText)
	if !strings.HasPrefix(got, "````text\n") {
		t.Errorf("Fence = %q, want four-backtick fence", got)
	}
	if !strings.HasSuffix(got, "````\n") {
		t.Errorf("Fence = %q, want four-backtick closing fence", got)
	}
}
