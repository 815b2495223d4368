// Package render converts markdown to HTML for previewing a transform
// result. The transform engine itself never parses markdown; rendering is a
// presentation step on top of its output.
package render

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Flavor identifies the markdown flavor used for rendering.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Renderer converts markdown text to an HTML fragment or document.
type Renderer struct {
	flavor string
	md     goldmark.Markdown
}

// New creates a renderer for the given flavor. Supported flavors are
// "commonmark" and "gfm"; anything else falls back to "gfm", which matches
// what paste targets typically display.
func New(flavor string) *Renderer {
	f := flavorOrDefault(flavor)
	return &Renderer{
		flavor: f,
		md:     newInstance(f),
	}
}

// Flavor returns the configured markdown flavor.
func (r *Renderer) Flavor() string {
	return r.flavor
}

// Fragment renders content to an HTML fragment.
func (r *Renderer) Fragment(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// Document renders content to a standalone HTML document with title as the
// page title.
func (r *Renderer) Document(content, title string) (string, error) {
	fragment, err := r.Fragment(content)
	if err != nil {
		return "", err
	}

	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("</head>\n<body>\n")
	b.WriteString(fragment)
	b.WriteString("</body>\n</html>\n")
	return b.String(), nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorGFM
	}
}

func newInstance(flavor string) goldmark.Markdown {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	// Pasted content may embed raw HTML; keep it rather than emitting
	// goldmark's raw-HTML placeholder comments.
	opts = append(opts, goldmark.WithRendererOptions(ghtml.WithUnsafe()))

	return goldmark.New(opts...)
}
