// Package main is the entry point for the pastemd CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/pastemd/internal/cli"
	"github.com/yaklabco/pastemd/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// ErrNotNormalized is a signal for the exit code, not a failure.
		if !errors.Is(err, cli.ErrNotNormalized) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
