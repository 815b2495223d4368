package cli

import "errors"

// Exit codes for pastemd.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a failed run.
	ExitError = 1

	// ExitChanged indicates check mode found content that would change.
	ExitChanged = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrNotNormalized signals that check mode found unnormalized content. It
// maps to ExitChanged rather than a logged failure.
var ErrNotNormalized = errors.New("content is not normalized")

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNotNormalized):
		return ExitChanged
	default:
		return ExitError
	}
}
