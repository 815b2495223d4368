package transform

import (
	"regexp"
	"strings"

	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/pkg/config"
)

// RuleOutcome records the effect of a single substitution rule.
// A malformed pattern is skipped, never fatal.
type RuleOutcome struct {
	// Index is the rule's position in the configured list.
	Index int

	// Pattern is the rule's pattern text.
	Pattern string

	// Skipped is true when the pattern failed to compile.
	Skipped bool

	// Changed is true when the substitution altered the text.
	Changed bool

	// Err holds the compile error for skipped rules.
	Err error
}

// replacementEscapes decode the two-character escape sequences allowed in
// replacement text. The order is a correctness invariant: the CRLF pair is
// decoded before its halves, and the literal backslash comes last so it cannot
// corrupt sequences decoded earlier.
//
//nolint:gochecknoglobals // Read-only ordered decode table.
var replacementEscapes = [...][2]string{
	{`\r\n`, "\r\n"},
	{`\n`, "\n"},
	{`\r`, "\r"},
	{`\t`, "\t"},
	{`\'`, "'"},
	{`\"`, `"`},
	{`\\`, `\`},
}

// decodeReplacement unescapes replacement text in the fixed decode order.
func decodeReplacement(s string) string {
	for _, esc := range replacementEscapes {
		s = strings.ReplaceAll(s, esc[0], esc[1])
	}
	return s
}

// applyReplacements runs the ordered substitution pipeline. Each rule operates
// on the output of the previous one; patterns are compiled fresh per call.
func (e *Engine) applyReplacements(content string, rules []config.Rule) (string, []RuleOutcome, bool) {
	outcomes := make([]RuleOutcome, 0, len(rules))
	changed := false

	for i, rule := range rules {
		outcome := RuleOutcome{Index: i, Pattern: rule.Pattern}

		// An empty pattern matches between every character; treat it as a
		// configuration mistake rather than exploding the text.
		if rule.Pattern == "" {
			outcome.Skipped = true
			e.logger.Warn("skipping replacement rule with empty pattern",
				logging.FieldRule, i,
			)
			outcomes = append(outcomes, outcome)
			continue
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			outcome.Skipped = true
			outcome.Err = err
			e.logger.Warn("skipping malformed replacement rule",
				logging.FieldRule, i,
				logging.FieldPattern, rule.Pattern,
				logging.FieldError, err,
			)
			outcomes = append(outcomes, outcome)
			continue
		}

		replaced := re.ReplaceAllString(content, decodeReplacement(rule.Replacement))
		outcome.Changed = replaced != content
		changed = changed || outcome.Changed
		content = replaced

		outcomes = append(outcomes, outcome)
	}

	return content, outcomes, changed
}
