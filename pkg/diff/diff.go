// Package diff renders the difference between original and transformed text
// as a unified diff. It exists so callers can preview a transform before
// writing it back.
package diff

import (
	"fmt"
	"strings"
)

// Patch is a unified diff between two versions of one document.
type Patch struct {
	// Path labels the diff headers. For stdin input callers pass a
	// placeholder such as "stdin".
	Path string

	// Hunks are the change regions with surrounding context.
	Hunks []Hunk

	// Additions is the number of added lines across all hunks.
	Additions int

	// Deletions is the number of removed lines across all hunks.
	Deletions int
}

// Hunk is one contiguous change region.
type Hunk struct {
	// BeforeStart is the 1-based first line of the hunk in the original.
	BeforeStart int

	// BeforeCount is the number of original lines covered by the hunk.
	BeforeCount int

	// AfterStart is the 1-based first line of the hunk in the result.
	AfterStart int

	// AfterCount is the number of result lines covered by the hunk.
	AfterCount int

	// Lines are the hunk body, prefix-free.
	Lines []Line
}

// Line is a single diff body line.
type Line struct {
	Kind LineKind

	// Content is the line text without the +/-/space prefix.
	Content string
}

// LineKind classifies a diff body line.
type LineKind int

const (
	// Context is a line present in both versions.
	Context LineKind = iota

	// Added is a line present only in the result.
	Added

	// Removed is a line present only in the original.
	Removed
)

// contextWidth is the number of unchanged lines kept around each change.
const contextWidth = 3

// Compute builds a unified diff between before and after. It returns nil when
// the two texts are line-for-line identical.
func Compute(path, before, after string) *Patch {
	beforeLines := toLines(before)
	afterLines := toLines(after)

	if equal(beforeLines, afterLines) {
		return nil
	}

	hunks := hunksOf(beforeLines, afterLines)
	if len(hunks) == 0 {
		return nil
	}

	p := &Patch{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case Added:
				p.Additions++
			case Removed:
				p.Deletions++
			}
		}
	}
	return p
}

// String renders the patch in unified diff format with ---/+++ headers.
func (p *Patch) String() string {
	if p == nil || len(p.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(p.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)

	for _, h := range p.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.BeforeStart, h.BeforeCount, h.AfterStart, h.AfterCount)

		for _, l := range h.Lines {
			switch l.Kind {
			case Context:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case Added:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case Removed:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}

	return b.String()
}

// toLines splits text into lines without a trailing empty element.
func toLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// op is one step of the line-level edit script.
type op struct {
	kind    LineKind
	content string
}

// hunksOf computes the edit script via LCS and groups it into hunks.
func hunksOf(before, after []string) []Hunk {
	ops := editScript(before, after)
	if len(ops) == 0 {
		return nil
	}

	// Locate runs of changed lines.
	type span struct{ start, end int }
	var spans []span
	open := false
	spanStart := 0
	for i, o := range ops {
		changed := o.kind != Context
		switch {
		case changed && !open:
			spanStart = i
			open = true
		case !changed && open:
			spans = append(spans, span{spanStart, i})
			open = false
		}
	}
	if open {
		spans = append(spans, span{spanStart, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	// Merge spans whose context windows would overlap, then cut hunks.
	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextWidth*2 {
			j++
		}
		hunks = append(hunks, cutHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

// cutHunk extracts ops[changeStart:changeEnd] plus context into a Hunk.
func cutHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextWidth, 0)
	end := min(changeEnd+contextWidth, len(ops))

	h := Hunk{BeforeStart: 1, AfterStart: 1}
	for i := 0; i < start; i++ {
		if ops[i].kind != Added {
			h.BeforeStart++
		}
		if ops[i].kind != Removed {
			h.AfterStart++
		}
	}

	for i := start; i < end; i++ {
		h.Lines = append(h.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})
		switch ops[i].kind {
		case Context:
			h.BeforeCount++
			h.AfterCount++
		case Removed:
			h.BeforeCount++
		case Added:
			h.AfterCount++
		}
	}
	return h
}

// editScript emits the line operations turning before into after, anchored on
// their longest common subsequence.
func editScript(before, after []string) []op {
	lcs := commonSubsequence(before, after)

	var ops []op
	bi, ai, li := 0, 0, 0
	for bi < len(before) || ai < len(after) {
		if li < len(lcs) && bi < len(before) && ai < len(after) &&
			before[bi] == lcs[li] && after[ai] == lcs[li] {
			ops = append(ops, op{Context, before[bi]})
			bi++
			ai++
			li++
			continue
		}

		for bi < len(before) && (li >= len(lcs) || before[bi] != lcs[li]) {
			ops = append(ops, op{Removed, before[bi]})
			bi++
		}
		for ai < len(after) && (li >= len(lcs) || after[ai] != lcs[li]) {
			ops = append(ops, op{Added, after[ai]})
			ai++
		}
	}
	return ops
}

// commonSubsequence computes the LCS of two line slices by dynamic
// programming.
func commonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	n := dp[len(a)][len(b)]
	if n == 0 {
		return nil
	}

	out := make([]string, n)
	i, j, k := len(a), len(b), n-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
