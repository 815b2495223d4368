package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiscoverSortedMarkdownOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.md", "b")
	writeFile(t, dir, "a.md", "a")
	writeFile(t, dir, "notes.txt", "not markdown")
	writeFile(t, dir, "deep/c.markdown", "c")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "deep", "c.markdown"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverSkipsHidden(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "visible.md", "v")
	writeFile(t, dir, ".hidden.md", "h")
	writeFile(t, dir, ".git/internal.md", "g")

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "visible.md" {
		t.Errorf("files = %v, want only visible.md", files)
	}
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "k")
	writeFile(t, dir, "vendor/dep.md", "d")
	writeFile(t, dir, "drafts/wip.md", "w")

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/drafts"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "keep.md" {
		t.Errorf("files = %v, want only keep.md", files)
	}
}

func TestDiscoverExplicitFileDeduplicated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "d")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"doc.md", ".", "doc.md"},
	})
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("files = %v, want one entry", files)
	}
}

func TestDiscoverStatError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{"missing.md"},
	})
	if err == nil {
		t.Fatal("Discover succeeded for missing path")
	}
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"doc.md", "*.md", true},
		{"dir/doc.md", "*.md", true}, // basename fallback
		{"vendor/x/y.md", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"other/x.md", "vendor/**", false},
		{"a/drafts/x.md", "**/drafts", true},
		{"a/b/x.md", "**", true},
		{"docs/x/gen.md", "docs/**/gen.md", true},
		{"docs/x/other.md", "docs/**/gen.md", false},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.path, tt.pattern); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}
