package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/pastemd/internal/configloader"
	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/internal/ui/pretty"
	"github.com/yaklabco/pastemd/pkg/config"
	"github.com/yaklabco/pastemd/pkg/diff"
	"github.com/yaklabco/pastemd/pkg/langdetect"
	"github.com/yaklabco/pastemd/pkg/runner"
	"github.com/yaklabco/pastemd/pkg/transform"
)

type reformatFlags struct {
	contextLevel    int
	escape          bool
	write           bool
	check           bool
	diffOut         bool
	detectCode      bool
	jobs            int
	exclude         []string
	maxHeadingLevel int
	cascade         bool
	contextCascade  bool
	collapse        bool
	removeEmpty     bool
	stripBreaks     bool
	verbose         bool
}

func newReformatCommand() *cobra.Command {
	flags := &reformatFlags{}

	cmd := &cobra.Command{
		Use:   "reformat [paths...]",
		Short: "Reformat pasted markdown",
		Long:  reformatLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReformat(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.contextLevel, "context-level", 0,
		"heading depth the content is pasted under (0 = none)")
	cmd.Flags().BoolVar(&flags.escape, "escape", false,
		"escape markdown syntax so the content renders literally")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false,
		"rewrite files in place instead of printing")
	cmd.Flags().BoolVar(&flags.check, "check", false,
		"report whether inputs would change, without writing")
	cmd.Flags().BoolVar(&flags.diffOut, "diff", false,
		"print a unified diff instead of the result")
	cmd.Flags().BoolVar(&flags.detectCode, "detect-code", false,
		"fence pasted source code instead of reshaping it")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().IntVar(&flags.maxHeadingLevel, "max-heading-level", 1,
		"depth the most prominent heading is raised to (1 = disabled)")
	cmd.Flags().BoolVar(&flags.cascade, "cascade", false,
		"shift later headings by the same delta after a max-level clamp")
	cmd.Flags().BoolVar(&flags.contextCascade, "contextual-cascade", false,
		"renormalize headings relative to --context-level")
	cmd.Flags().BoolVar(&flags.collapse, "collapse-blank-runs", true,
		"collapse runs of blank lines to a single blank line")
	cmd.Flags().BoolVar(&flags.removeEmpty, "remove-empty-lines", false,
		"remove blank lines outside protected positions")
	cmd.Flags().BoolVar(&flags.stripBreaks, "strip-line-breaks", false,
		"ignore preserve-line-break markers when removing empty lines")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"print a status line for every file")

	return cmd
}

const reformatLongDescription = `Reformat pasted markdown content.

Without paths, reads from stdin and writes the result to stdout. With paths,
processes the named files and directories (recursively, .md and .markdown).

Examples:
  pbpaste | pastemd reformat --context-level 2    # Fit under a level-2 heading
  pastemd reformat --escape < snippet.md          # Neutralize markdown syntax
  pastemd reformat docs/ --write                  # Rewrite files in place
  pastemd reformat docs/ --check                  # Exit 2 if anything would change
  pastemd reformat notes.md --diff                # Show the changes as a diff`

func runReformat(cmd *cobra.Command, args []string, flags *reformatFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, workDir, err := resolveConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	if len(args) == 0 {
		return reformatStdin(cmd, cfg, styles)
	}

	logger.Debug("starting batch run",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, cfg.Jobs,
	)

	result, err := runner.New(transform.New()).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Exclude,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	})
	if err != nil {
		return errors.Join(errors.New("reformat run failed"), err)
	}

	out := cmd.OutOrStdout()
	for _, outcome := range result.Files {
		if outcome.Patch != nil {
			fmt.Fprint(out, styles.FormatPatch(outcome.Patch))
		}
		if flags.verbose || outcome.Error != nil || (outcome.Changed && outcome.Patch == nil) {
			fmt.Fprint(out, styles.FormatFileLine(outcome))
		}
	}
	if flags.verbose {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if result.Errored() {
		return fmt.Errorf("%d files failed", result.Stats.FilesErrored)
	}
	if cfg.Check && result.Changed() {
		return ErrNotNormalized
	}
	return nil
}

// resolveConfig layers config files and environment, then applies CLI flags
// on top. Flag values only override when the flag was set on the command
// line.
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *reformatFlags) (*config.Config, string, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config

	changed := cmd.Flags().Changed
	if changed("max-heading-level") {
		cfg.MaxHeadingLevel = flags.maxHeadingLevel
	}
	if changed("cascade") {
		cfg.CascadeHeadingLevels = flags.cascade
	}
	if changed("contextual-cascade") {
		cfg.ContextualCascade = flags.contextCascade
	}
	if changed("collapse-blank-runs") {
		cfg.CollapseBlankRuns = flags.collapse
	}
	if changed("remove-empty-lines") {
		cfg.RemoveEmptyLines = flags.removeEmpty
	}
	if changed("strip-line-breaks") {
		cfg.StripLineBreaks = flags.stripBreaks
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	cfg.Exclude = append(cfg.Exclude, flags.exclude...)

	cfg.ContextLevel = flags.contextLevel
	cfg.Escape = flags.escape
	cfg.Write = flags.write
	cfg.Check = flags.check
	cfg.Diff = flags.diffOut
	cfg.DetectCode = flags.detectCode

	if cfg.MaxHeadingLevel < 1 || cfg.MaxHeadingLevel > config.MaxHeadingDepth {
		return nil, "", fmt.Errorf("max heading level must be between 1 and %d, got %d",
			config.MaxHeadingDepth, cfg.MaxHeadingLevel)
	}

	return cfg, workDir, nil
}

// reformatStdin transforms a single document from stdin to stdout.
func reformatStdin(cmd *cobra.Command, cfg *config.Config, styles *pretty.Styles) error {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.Default().Info("reading from terminal; paste content and end with Ctrl-D")
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	before := string(raw)

	after := before
	changedContent := false

	if cfg.DetectCode {
		if tag, isCode := langdetect.Detect(before); isCode {
			after = langdetect.Fence(before, tag)
			changedContent = true
		}
	}

	if after == before && !changedContent {
		res := transform.New().Transform(before, cfg, transform.Options{
			ContextLevel: cfg.ContextLevel,
			Escape:       cfg.Escape,
		})
		after = res.Content
		changedContent = res.Changed
	}

	out := cmd.OutOrStdout()
	switch {
	case cfg.Diff:
		fmt.Fprint(out, styles.FormatPatch(diff.Compute("stdin", before, after)))
	case cfg.Check:
		// Check mode prints nothing; the exit code carries the answer.
	default:
		fmt.Fprint(out, after)
	}

	if cfg.Check && changedContent {
		return ErrNotNormalized
	}
	return nil
}
