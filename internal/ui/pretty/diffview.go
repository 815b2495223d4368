package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/pastemd/pkg/diff"
)

// FormatPatch renders a unified diff with per-line styling. A nil patch
// renders as the empty string.
func (s *Styles) FormatPatch(p *diff.Patch) string {
	if p == nil || len(p.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(p.Path, "/")

	var b strings.Builder
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("--- a/%s", path)))
	b.WriteString("\n")
	b.WriteString(s.DiffHeader.Render(fmt.Sprintf("+++ b/%s", path)))
	b.WriteString("\n")

	for _, h := range p.Hunks {
		b.WriteString(s.DiffHunk.Render(fmt.Sprintf("@@ -%d,%d +%d,%d @@",
			h.BeforeStart, h.BeforeCount, h.AfterStart, h.AfterCount)))
		b.WriteString("\n")

		for _, line := range h.Lines {
			switch line.Kind {
			case diff.Added:
				b.WriteString(s.DiffAdd.Render("+" + line.Content))
			case diff.Removed:
				b.WriteString(s.DiffRemove.Render("-" + line.Content))
			default:
				b.WriteString(s.DiffContext.Render(" " + line.Content))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
