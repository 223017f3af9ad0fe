package cli

import (
	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
)

// Exit codes for the changelogger CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (repository access, write, ...)
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = 3

	// ExitAborted indicates the operator aborted an interactive prompt
	ExitAborted = 5
)

// exitCodeFor maps an error to its process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if apperrors.IsAborted(err) {
		return ExitAborted
	}
	if cliErr := apperrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case apperrors.Argument, apperrors.Configuration:
			return ExitInvalidArguments
		case apperrors.Classification, apperrors.Runtime:
			return ExitFailure
		}
	}
	return ExitFailure
}
