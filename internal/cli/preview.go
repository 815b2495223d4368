package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/pastemd/internal/logging"
	"github.com/yaklabco/pastemd/pkg/render"
	"github.com/yaklabco/pastemd/pkg/transform"
)

type previewFlags struct {
	contextLevel int
	escape       bool
	flavor       string
	raw          bool
	title        string
	output       string
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render the reformatted result as HTML",
		Long: `Run the reformat pipeline and render the result as HTML, to inspect how
the normalized content will display before pasting it.

Reads from the named file, or stdin when no file is given. Writes a full
HTML document to stdout unless --output is set.

Examples:
  pbpaste | pastemd preview --context-level 2 > out.html
  pastemd preview notes.md -o notes.html
  pastemd preview notes.md --raw        # skip the transform, render as-is`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, flags)
		},
	}

	cmd.Flags().IntVar(&flags.contextLevel, "context-level", 0,
		"heading depth the content is pasted under (0 = none)")
	cmd.Flags().BoolVar(&flags.escape, "escape", false,
		"escape markdown syntax before rendering")
	cmd.Flags().StringVar(&flags.flavor, "flavor", render.FlavorGFM,
		"markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.raw, "raw", false,
		"render the input without reformatting it first")
	cmd.Flags().StringVar(&flags.title, "title", "pastemd preview", "HTML page title")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to a file")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string, flags *previewFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	content := string(raw)

	if !flags.raw {
		rf := &reformatFlags{contextLevel: flags.contextLevel, escape: flags.escape}
		cfg, _, err := resolveConfig(ctx, cmd, rf)
		if err != nil {
			return err
		}
		res := transform.New().Transform(content, cfg, transform.Options{
			ContextLevel: cfg.ContextLevel,
			Escape:       cfg.Escape,
		})
		content = res.Content
	}

	doc, err := render.New(flags.flavor).Document(content, flags.title)
	if err != nil {
		return err
	}

	if flags.output != "" {
		if err := os.WriteFile(flags.output, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", flags.output, err)
		}
		logging.Default().Info("wrote preview", logging.FieldPath, flags.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), doc)
	return nil
}
