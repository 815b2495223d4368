// Package transform implements the paste-normalizing markdown engine.
// It rewrites heading depth, escapes markdown syntax, reduces blank-line
// density, and applies ordered pattern substitutions, all by line- and
// pattern-oriented text rewriting. The engine never parses markdown into a
// syntax tree and keeps no state between calls.
package transform

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/pkg/config"
)

// Stage names, in pipeline order.
const (
	StageHeadings     = "headings"
	StageEscape       = "escape"
	StageCollapse     = "collapse_blank_runs"
	StageEmptyLines   = "remove_empty_lines"
	StageReplacements = "replacements"
)

// Options are the per-invocation parameters.
type Options struct {
	// ContextLevel is the depth of the enclosing heading under which the
	// content is being inserted. 0 means no enclosing context.
	ContextLevel int

	// Escape neutralizes markdown syntax instead of normalizing headings.
	Escape bool
}

// StageResult describes one stage of a transform run.
type StageResult struct {
	// Stage is the stage name constant.
	Stage string

	// Ran is true when the stage's gating condition was met.
	Ran bool

	// Changed is true when the stage altered the text.
	Changed bool
}

// Result is the outcome of a transform run.
type Result struct {
	// Content is the transformed text.
	Content string

	// Changed is true when any stage altered the text. It accumulates
	// monotonically across stages. Stages compare against line-ending
	// normalized input, so rewriting CRLF to LF alone does not set it.
	Changed bool

	// Stages holds per-stage outcomes in pipeline order.
	Stages []StageResult

	// Rules holds per-rule outcomes from the substitution pipeline.
	Rules []RuleOutcome
}

// Engine runs the transform pipeline. It is stateless between calls and safe
// for concurrent use.
type Engine struct {
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates a transform engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: logging.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transform runs the five-stage pipeline over content. Stages 1 and 2 are
// mutually exclusive on opts.Escape; the blank-line collapser is skipped when
// the empty-line filter will run; the remaining stages run whenever their
// configuration flag is set. The caller owns cfg and content; both are left
// untouched.
func (e *Engine) Transform(content string, cfg *config.Config, opts Options) Result {
	res := Result{}
	changed := false

	record := func(stage string, ran, stageChanged bool) {
		res.Stages = append(res.Stages, StageResult{Stage: stage, Ran: ran, Changed: stageChanged})
		if ran && stageChanged {
			changed = true
		}
	}

	// Every stage reports an entry each run so callers can inspect the full
	// pipeline, including the branch that did not fire.
	if opts.Escape {
		record(StageHeadings, false, false)

		escaped, c := e.escapeMarkdown(content)
		content = escaped
		record(StageEscape, true, c)
	} else {
		contextual := cfg.ContextualCascade && opts.ContextLevel > 0
		ran := contextual || cfg.MaxHeadingLevel > 1

		normalized, c := e.normalizeHeadings(content, cfg, opts.ContextLevel)
		content = normalized
		record(StageHeadings, ran, c)
		record(StageEscape, false, false)
	}

	if cfg.CollapseBlankRuns && !cfg.RemoveEmptyLines {
		collapsed, c := collapseBlankRuns(content)
		content = collapsed
		record(StageCollapse, true, c)
	} else {
		record(StageCollapse, false, false)
	}

	if cfg.RemoveEmptyLines {
		filtered, c := filterEmptyLines(content, !cfg.StripLineBreaks)
		content = filtered
		record(StageEmptyLines, true, c)
	} else {
		record(StageEmptyLines, false, false)
	}

	if len(cfg.Replacements) > 0 {
		replaced, outcomes, c := e.applyReplacements(content, cfg.Replacements)
		content = replaced
		res.Rules = outcomes
		record(StageReplacements, true, c)
	} else {
		record(StageReplacements, false, false)
	}

	res.Content = content
	res.Changed = changed
	return res
}
