package diff

import (
	"strings"
	"testing"
)

func TestComputeIdentical(t *testing.T) {
	t.Parallel()

	if p := Compute("doc.md", "a\nb\n", "a\nb\n"); p != nil {
		t.Errorf("Compute returned %+v for identical input, want nil", p)
	}
	if p := Compute("doc.md", "", ""); p != nil {
		t.Errorf("Compute returned %+v for empty input, want nil", p)
	}
}

func TestComputeSingleChange(t *testing.T) {
	t.Parallel()

	p := Compute("doc.md", "one\ntwo\nthree\n", "one\n2\nthree\n")
	if p == nil {
		t.Fatal("Compute returned nil")
	}
	if p.Additions != 1 || p.Deletions != 1 {
		t.Errorf("Additions/Deletions = %d/%d, want 1/1", p.Additions, p.Deletions)
	}
	if len(p.Hunks) != 1 {
		t.Fatalf("hunks = %d, want 1", len(p.Hunks))
	}

	h := p.Hunks[0]
	if h.BeforeStart != 1 || h.BeforeCount != 3 || h.AfterStart != 1 || h.AfterCount != 3 {
		t.Errorf("hunk header = -%d,%d +%d,%d, want -1,3 +1,3",
			h.BeforeStart, h.BeforeCount, h.AfterStart, h.AfterCount)
	}

	want := "--- a/doc.md\n" +
		"+++ b/doc.md\n" +
		"@@ -1,3 +1,3 @@\n" +
		" one\n" +
		"-two\n" +
		"+2\n" +
		" three\n"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestComputeAdditionOnly(t *testing.T) {
	t.Parallel()

	p := Compute("doc.md", "a\n", "a\nb\n")
	if p == nil {
		t.Fatal("Compute returned nil")
	}
	if p.Additions != 1 || p.Deletions != 0 {
		t.Errorf("Additions/Deletions = %d/%d, want 1/0", p.Additions, p.Deletions)
	}
	if !strings.Contains(p.String(), "+b\n") {
		t.Errorf("String() = %q, missing +b line", p.String())
	}
}

func TestComputeSeparateHunks(t *testing.T) {
	t.Parallel()

	// Two changes separated by more than twice the context width must land
	// in distinct hunks.
	var before, after strings.Builder
	for i := 0; i < 20; i++ {
		line := string(rune('a' + i))
		before.WriteString(line + "\n")
		if i == 0 {
			after.WriteString("FIRST\n")
		} else if i == 19 {
			after.WriteString("LAST\n")
		} else {
			after.WriteString(line + "\n")
		}
	}

	p := Compute("doc.md", before.String(), after.String())
	if p == nil {
		t.Fatal("Compute returned nil")
	}
	if len(p.Hunks) != 2 {
		t.Fatalf("hunks = %d, want 2", len(p.Hunks))
	}
	if p.Hunks[1].BeforeStart <= p.Hunks[0].BeforeStart {
		t.Errorf("hunks out of order: %d then %d",
			p.Hunks[0].BeforeStart, p.Hunks[1].BeforeStart)
	}
}

func TestComputeAdjacentChangesMerge(t *testing.T) {
	t.Parallel()

	// Changes four lines apart share context and merge into one hunk.
	before := "x\na\nb\nc\nd\ny\n"
	after := "X\na\nb\nc\nd\nY\n"

	p := Compute("doc.md", before, after)
	if p == nil {
		t.Fatal("Compute returned nil")
	}
	if len(p.Hunks) != 1 {
		t.Errorf("hunks = %d, want 1", len(p.Hunks))
	}
}

func TestPatchStringNil(t *testing.T) {
	t.Parallel()

	var p *Patch
	if got := p.String(); got != "" {
		t.Errorf("nil String() = %q, want empty", got)
	}
}

func TestComputeStripsLeadingSlash(t *testing.T) {
	t.Parallel()

	p := Compute("/abs/doc.md", "a\n", "b\n")
	if p == nil {
		t.Fatal("Compute returned nil")
	}
	if !strings.HasPrefix(p.String(), "--- a/abs/doc.md\n") {
		t.Errorf("String() = %q, want rooted a/ path", p.String())
	}
}
