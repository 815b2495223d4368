// Package runner orchestrates transforming many markdown files at once:
// discovery, a worker pool, and deterministic result aggregation.
package runner

import "github.com/yaklabco/pastemd/pkg/config"

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir resolves relative Paths. Empty means the process working
	// directory.
	WorkingDir string

	// Extensions is the set of extensions (lowercase, leading dot) treated
	// as markdown. Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip files or directories, relative to WorkingDir. The
	// caller merges config excludes and CLI flags into this list.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps concurrent workers. 0 or negative means one per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the extensions treated as markdown.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
