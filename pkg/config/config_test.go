package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	assert.Equal(t, 1, cfg.MaxHeadingLevel)
	assert.True(t, cfg.CollapseBlankRuns)
	assert.False(t, cfg.ContextualCascade)
	assert.False(t, cfg.RemoveEmptyLines)
	assert.Empty(t, cfg.Replacements)
	assert.Zero(t, cfg.Jobs)
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.ContextualCascade = true
	cfg.MaxHeadingLevel = 3
	cfg.Replacements = []Rule{
		{Pattern: `\bfoo\b`, Replacement: "bar"},
	}
	cfg.Exclude = []string{"vendor/**"}

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	parsed, err := FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, cfg.ContextualCascade, parsed.ContextualCascade)
	assert.Equal(t, cfg.MaxHeadingLevel, parsed.MaxHeadingLevel)
	assert.Equal(t, cfg.Replacements, parsed.Replacements)
	assert.Equal(t, cfg.Exclude, parsed.Exclude)
}

func TestYAMLOmitsCLIFields(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Write = true
	cfg.Check = true
	cfg.ContextLevel = 3

	data, err := cfg.ToYAML()
	require.NoError(t, err)

	text := string(data)
	assert.NotContains(t, text, "write:")
	assert.NotContains(t, text, "check:")
	assert.NotContains(t, text, "context_level:")
}

func TestApplyYAMLOverlays(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.MaxHeadingLevel = 2

	// Only the key present in the document changes.
	require.NoError(t, cfg.ApplyYAML([]byte("contextual_cascade: true\n")))
	assert.True(t, cfg.ContextualCascade)
	assert.Equal(t, 2, cfg.MaxHeadingLevel)

	// A present key can reset a default-true value.
	require.NoError(t, cfg.ApplyYAML([]byte("collapse_blank_runs: false\n")))
	assert.False(t, cfg.CollapseBlankRuns)
}

func TestApplyYAMLMalformed(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	assert.Error(t, cfg.ApplyYAML([]byte("replacements: [unclosed\n")))
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Replacements = []Rule{{Pattern: "a", Replacement: "b"}}
	cfg.Exclude = []string{"x/**"}

	clone := cfg.Clone()
	require.NotSame(t, cfg, clone)
	assert.Equal(t, cfg, clone)

	// Mutating the clone's slices must not touch the original.
	clone.Replacements[0].Pattern = "changed"
	clone.Exclude[0] = "changed"
	assert.Equal(t, "a", cfg.Replacements[0].Pattern)
	assert.Equal(t, "x/**", cfg.Exclude[0])
}

func TestCloneNil(t *testing.T) {
	t.Parallel()

	var cfg *Config
	assert.Nil(t, cfg.Clone())
}

func TestGenerateTemplateIsValidYAML(t *testing.T) {
	t.Parallel()

	tmpl := GenerateTemplate()
	require.NotEmpty(t, tmpl)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(tmpl, &doc))

	// The uncommented keys carry the defaults.
	assert.Equal(t, 1, doc["max_heading_level"])
	assert.Equal(t, true, doc["collapse_blank_runs"])
}
