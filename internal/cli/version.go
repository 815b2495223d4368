package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/pastemd/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of pastemd.`,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.New(cmd.OutOrStdout(), "info")
			logger.Info("pastemd",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}
}
