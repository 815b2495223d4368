package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/pastemd/pkg/config"
)

// envVarPrefix is the prefix for all pastemd environment variables.
const envVarPrefix = "PASTEMD_"

// LoadFromEnv applies PASTEMD_* environment variable overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if err := envBool("CONTEXTUAL_CASCADE", &cfg.ContextualCascade); err != nil {
		return err
	}
	if err := envBool("CASCADE_HEADING_LEVELS", &cfg.CascadeHeadingLevels); err != nil {
		return err
	}
	if err := envBool("STRIP_LINE_BREAKS", &cfg.StripLineBreaks); err != nil {
		return err
	}
	if err := envBool("COLLAPSE_BLANK_RUNS", &cfg.CollapseBlankRuns); err != nil {
		return err
	}
	if err := envBool("REMOVE_EMPTY_LINES", &cfg.RemoveEmptyLines); err != nil {
		return err
	}
	if err := envInt("MAX_HEADING_LEVEL", &cfg.MaxHeadingLevel); err != nil {
		return err
	}
	if err := envInt("JOBS", &cfg.Jobs); err != nil {
		return err
	}
	envSlice("EXCLUDE", &cfg.Exclude)

	return nil
}

func envBool(suffix string, dst *bool) error {
	value := os.Getenv(envVarPrefix + suffix)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for %s%s: %q (expected true/false/1/0)",
			envVarPrefix, suffix, value)
	}
	*dst = b
	return nil
}

func envInt(suffix string, dst *int) error {
	value := os.Getenv(envVarPrefix + suffix)
	if value == "" {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer for %s%s: %q", envVarPrefix, suffix, value)
	}
	*dst = i
	return nil
}

func envSlice(suffix string, dst *[]string) {
	value := os.Getenv(envVarPrefix + suffix)
	if value == "" {
		return
	}
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if parts != nil {
		*dst = parts
	}
}

// ListEnvVars describes the supported environment variables, for help text.
func ListEnvVars() map[string]string {
	return map[string]string{
		"PASTEMD_CONTEXTUAL_CASCADE":     "Renormalize headings relative to the paste context: true or false",
		"PASTEMD_CASCADE_HEADING_LEVELS": "Cascade deeper headings after a max-level clamp: true or false",
		"PASTEMD_MAX_HEADING_LEVEL":      "Depth the most prominent heading is raised to (1-6)",
		"PASTEMD_STRIP_LINE_BREAKS":      "Ignore preserve-line-break markers when removing empty lines: true or false",
		"PASTEMD_COLLAPSE_BLANK_RUNS":    "Collapse runs of blank lines to a single blank line: true or false",
		"PASTEMD_REMOVE_EMPTY_LINES":     "Remove empty lines outside protected positions: true or false",
		"PASTEMD_EXCLUDE":                "Comma-separated glob patterns to skip",
		"PASTEMD_JOBS":                   "Number of parallel workers (0 = auto)",
	}
}
