package runner

import (
	"github.com/yaklabco/pastemd/pkg/diff"
	"github.com/yaklabco/pastemd/pkg/transform"
)

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the absolute path that was processed.
	Path string

	// Changed is true when the transform altered the file content.
	Changed bool

	// Written is true when the new content was written back to disk.
	Written bool

	// Fenced is true when the file was recognized as a code paste and
	// wrapped in a fence instead of being transformed.
	Fenced bool

	// Language is the fence tag chosen when Fenced is true.
	Language string

	// Patch is the unified diff between old and new content. Only set when
	// diff output was requested and the file changed.
	Patch *diff.Patch

	// Rules holds per-rule outcomes from the substitution pipeline.
	Rules []transform.RuleOutcome

	// Error is set when the file could not be read or written.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	// FilesDiscovered is the number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files transformed without error.
	FilesProcessed int

	// FilesErrored is the number of files that failed to read or write.
	FilesErrored int

	// FilesChanged is the number of files the transform altered.
	FilesChanged int

	// FilesWritten is the number of files written back to disk.
	FilesWritten int

	// FilesFenced is the number of files wrapped as code pastes.
	FilesFenced int

	// RulesSkipped counts substitution rules skipped for invalid patterns,
	// summed across files.
	RulesSkipped int
}

// Result is the overall outcome of a run. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// Changed reports whether any file was altered by the transform.
func (r *Result) Changed() bool {
	return r != nil && r.Stats.FilesChanged > 0
}

// Errored reports whether any file failed.
func (r *Result) Errored() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// accumulate folds one outcome into the aggregate.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Changed {
		r.Stats.FilesChanged++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Fenced {
		r.Stats.FilesFenced++
	}
	for _, rule := range outcome.Rules {
		if rule.Skipped {
			r.Stats.RulesSkipped++
		}
	}
}
