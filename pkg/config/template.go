package config

import "bytes"

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# pastemd configuration
# See: https://github.com/yaklabco/pastemd

# Minimum depth pasted headings are pushed to (1-6, 1 = disabled)
max_heading_level: 1

# Shift headings after the first adjusted one by the same delta
# cascade_heading_levels: false

# Push pasted headings below the enclosing heading when a context
# level is supplied (takes priority over max_heading_level)
# contextual_cascade: false

# Reduce runs of 3+ line breaks to a single blank line
collapse_blank_runs: true

# Drop blank lines except after headings and before rules/tables
# remove_empty_lines: false

# Ignore preserve-line-break markers in pasted HTML
# strip_line_breaks: false

# Ordered pattern -> replacement rules, applied after everything else.
# Replacement text may use \n, \t and friends.
# replacements:
#   - pattern: "\\bTODO\\b"
#     replacement: "**TODO**"

# File patterns to skip in batch mode (glob patterns)
# exclude:
#   - "vendor/**"
`)

	return buf.Bytes()
}
