// Package configloader resolves the effective configuration from config
// files, environment variables, and defaults. File discovery covers an
// XDG-style user config and an upward project config search.
package configloader

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/yaklabco/pastemd/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory the project config search starts from.
	// Empty means the process working directory.
	WorkingDir string

	// ExplicitPath is a config file given via --config. When set, project
	// config discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips the user-level config file.
	IgnoreUserConfig bool

	// IgnoreEnv skips PASTEMD_* environment variables.
	IgnoreEnv bool
}

// LoadResult is the resolved configuration plus provenance.
type LoadResult struct {
	// Config is the final layered configuration.
	Config *config.Config

	// Paths are the discovered config file locations.
	Paths *Paths

	// LoadedFrom lists the files actually loaded, lowest precedence first.
	LoadedFrom []string

	// Warnings are non-fatal issues found while loading, such as
	// replacement rules whose patterns do not compile.
	Warnings []string
}

// Load resolves the configuration. Precedence, highest first:
//  1. PASTEMD_* environment variables
//  2. Explicit config file (--config)
//  3. Project config (.pastemd.yml, searched upward)
//  4. User config ($XDG_CONFIG_HOME/pastemd/config.yaml)
//  5. Defaults
//
// CLI flags outrank all of these; the command layer applies them to the
// returned config afterwards. Each file is decoded over the accumulated
// config, so only keys a file actually sets take effect. A file can turn a
// default-true option off.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	if !opts.IgnoreUserConfig && paths.User != "" {
		if err := loadFileInto(cfg, paths.User); err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if opts.ExplicitPath == "" && paths.Project != "" {
		if err := loadFileInto(cfg, paths.Project); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if opts.ExplicitPath != "" {
		if err := loadFileInto(cfg, opts.ExplicitPath); err != nil {
			return nil, fmt.Errorf("load config %s: %w", opts.ExplicitPath, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if err := validate(cfg, result); err != nil {
		return nil, err
	}

	result.Config = cfg
	return result, nil
}

// loadFileInto decodes a YAML config file over cfg. Keys absent from the
// file leave the existing values in place.
func loadFileInto(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if err := cfg.ApplyYAML(content); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// validate rejects out-of-range settings and downgrades bad replacement
// patterns to warnings, matching the engine's skip-and-continue behavior.
func validate(cfg *config.Config, result *LoadResult) error {
	if cfg.MaxHeadingLevel < 1 || cfg.MaxHeadingLevel > config.MaxHeadingDepth {
		return fmt.Errorf("max_heading_level must be between 1 and %d, got %d",
			config.MaxHeadingDepth, cfg.MaxHeadingLevel)
	}
	if cfg.Jobs < 0 {
		return fmt.Errorf("jobs must be zero or positive, got %d", cfg.Jobs)
	}

	for i, rule := range cfg.Replacements {
		if rule.Pattern == "" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("replacement %d has an empty pattern and will be skipped", i))
			continue
		}
		if _, err := regexp.Compile(rule.Pattern); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("replacement %d pattern %q does not compile and will be skipped: %v",
					i, rule.Pattern, err))
		}
	}
	return nil
}
