// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Transform fields.
	FieldStage        = "stage"
	FieldContextLevel = "context_level"
	FieldHeadingLevel = "heading_level"
	FieldNewLevel     = "new_level"
	FieldDelta        = "delta"
	FieldRule         = "rule"
	FieldPattern      = "pattern"
	FieldLanguage     = "language"

	// Configuration fields.
	FieldEscape = "escape"
	FieldWrite  = "write"
	FieldCheck  = "check"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldRulesSkipped    = "rules_skipped"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
