// Package config defines core configuration types for pastemd.
// These types are pure data structures with no dependency on the loader.
package config

// Rule is a single pattern -> replacement substitution.
// Patterns are regular expressions compiled fresh on every transform; the
// replacement text may contain two-character escape sequences (\n, \t, ...)
// that are decoded before substitution.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// MaxHeadingDepth is the deepest heading level markdown supports.
const MaxHeadingDepth = 6

// Config is the root configuration structure for pastemd.
type Config struct {
	// Replacements are applied in order, each operating on the output of
	// the previous rule.
	Replacements []Rule `yaml:"replacements"`

	// ContextualCascade pushes pasted headings below the enclosing heading
	// level when a context level is supplied.
	ContextualCascade bool `yaml:"contextual_cascade"`

	// MaxHeadingLevel is the minimum depth pasted headings are pushed to
	// (1-6). Values <= 1 disable max-level normalization.
	MaxHeadingLevel int `yaml:"max_heading_level"`

	// CascadeHeadingLevels shifts headings after the first adjusted one by
	// the same delta instead of clamping each independently.
	CascadeHeadingLevels bool `yaml:"cascade_heading_levels"`

	// StripLineBreaks disables the preserve-line-break marker handling in
	// the empty-line filter.
	StripLineBreaks bool `yaml:"strip_line_breaks"`

	// CollapseBlankRuns reduces runs of 3+ line breaks to one blank line.
	CollapseBlankRuns bool `yaml:"collapse_blank_runs"`

	// RemoveEmptyLines drops blank lines except where adjacency rules
	// require them (after headings, before rules and tables).
	RemoveEmptyLines bool `yaml:"remove_empty_lines"`

	// CLI-level options (not persisted to config files).

	// ContextLevel is the depth of the enclosing heading (0 = none).
	ContextLevel int `yaml:"-"`

	// Escape neutralizes markdown syntax instead of normalizing headings.
	Escape bool `yaml:"-"`

	// Write rewrites files in place instead of printing to stdout.
	Write bool `yaml:"-"`

	// Check reports whether inputs would change, without writing.
	Check bool `yaml:"-"`

	// Diff prints a unified diff of the transformation.
	Diff bool `yaml:"-"`

	// DetectCode fences pasted source code instead of reshaping it.
	DetectCode bool `yaml:"-"`

	// Jobs is the number of parallel workers for batch mode.
	Jobs int `yaml:"-"`

	// Exclude contains glob patterns for files to skip in batch mode.
	Exclude []string `yaml:"exclude"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Replacements:      nil,
		MaxHeadingLevel:   1, // disabled until raised
		CollapseBlankRuns: true,
		Jobs:              0, // 0 means use GOMAXPROCS
	}
}
