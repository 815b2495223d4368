package transform

import (
	"regexp"
	"strings"

	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/pkg/config"
)

// headingMarker matches a line-leading run of 1-6 '#' characters followed by
// whitespace. Markers inside code fences are matched too; the engine does not
// track fence state.
var headingMarker = regexp.MustCompile(`(?m)^(#{1,6})\s`)

// cascadeState carries the running depth adjustment across heading matches
// within a single normalization pass. The delta is committed once, at the
// trigger heading, and never re-derived.
type cascadeState struct {
	delta     int
	cascading bool
	changed   bool
}

func newCascadeState() *cascadeState {
	return &cascadeState{delta: -1}
}

// contextual computes the new depth for a heading pasted under an enclosing
// heading at contextLevel. The first heading at or above the context depth
// triggers the cascade; every later heading shifts by the committed delta.
func (s *cascadeState) contextual(level, contextLevel int) int {
	switch {
	case s.cascading:
		return clampDepth(level + s.delta)
	case level <= contextLevel:
		newLevel := clampDepth(contextLevel + 1)
		s.delta = newLevel - level
		s.cascading = true
		return newLevel
	default:
		return level
	}
}

// maxLevel computes the new depth for max-level normalization. With cascade
// disabled each heading is clamped independently; with cascade enabled the
// first heading shallower than maxLevel commits the delta for all that follow.
func (s *cascadeState) maxLevel(level, maxLevel int, cascade bool) int {
	if !cascade {
		if level < maxLevel {
			return maxLevel
		}
		return level
	}

	switch {
	case s.cascading:
		return clampDepth(level + s.delta)
	case level < maxLevel:
		s.delta = maxLevel - level
		s.cascading = true
		return maxLevel
	default:
		return level
	}
}

// clampDepth limits a heading depth to markdown's maximum of 6.
func clampDepth(level int) int {
	if level > config.MaxHeadingDepth {
		return config.MaxHeadingDepth
	}
	return level
}

// normalizeHeadings rewrites heading marker depth in document order.
// Contextual cascade takes priority when enabled and a context level is
// supplied; otherwise max-level normalization applies when the configured
// level is deeper than 1. The returned flag reflects only the final marker's
// outcome (last write wins), matching the stage's historical contract.
func (e *Engine) normalizeHeadings(content string, cfg *config.Config, contextLevel int) (string, bool) {
	contextual := cfg.ContextualCascade && contextLevel > 0
	if !contextual && cfg.MaxHeadingLevel <= 1 {
		return content, false
	}

	matches := headingMarker.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return content, false
	}

	state := newCascadeState()
	var b strings.Builder
	b.Grow(len(content))

	last := 0
	for _, m := range matches {
		level := m[3] - m[2]

		var newLevel int
		if contextual {
			wasCascading := state.cascading
			newLevel = state.contextual(level, contextLevel)
			if !wasCascading && state.cascading {
				e.logger.Debug("contextual cascade triggered",
					logging.FieldContextLevel, contextLevel,
					logging.FieldHeadingLevel, level,
					logging.FieldNewLevel, newLevel,
					logging.FieldDelta, state.delta,
				)
			}
		} else {
			newLevel = state.maxLevel(level, cfg.MaxHeadingLevel, cfg.CascadeHeadingLevels)
		}

		state.changed = newLevel != level

		b.WriteString(content[last:m[2]])
		b.WriteString(strings.Repeat("#", newLevel))
		last = m[3]
	}
	b.WriteString(content[last:])

	return b.String(), state.changed
}
