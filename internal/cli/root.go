// Package cli provides the Cobra command structure for pastemd.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/pastemd/internal/configloader"
	"github.com/yaklabco/pastemd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pastemd command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "pastemd",
		Short: "Normalize markdown pasted between documents",
		Long: `pastemd reshapes markdown content that is pasted from one document into
another: it renormalizes heading depth to fit the destination, collapses
excess blank lines, and applies user-defined pattern substitutions. It can
also escape markdown syntax so pasted text renders literally, and fence
pasted source code instead of mangling it.

Content comes from stdin or from files; results go to stdout or back to the
files with --write.

` + envVarHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newReformatCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// envVarHelp renders the supported environment variables for the root help.
func envVarHelp() string {
	vars := configloader.ListEnvVars()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Environment variables:")
	for _, name := range names {
		fmt.Fprintf(&b, "\n  %-30s %s", name, vars[name])
	}

	return b.String()
}
