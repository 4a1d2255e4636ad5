package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/shipnotes/shipnotes/internal/errors"
)

// Exit codes for the shipnotes CLI.
// These codes support programmatic composition and CI integration.
const (
	// ExitSuccess indicates successful command execution.
	ExitSuccess = 0

	// ExitFailure indicates a generation failure or an out-of-sync check.
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments.
	ExitInvalidArguments = 3

	// ExitMissingInput indicates a required input file does not exist.
	ExitMissingInput = 4
)

// ExitError carries an explicit process exit code through cobra's error
// return path without any message of its own.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// NewExitError creates an error that maps to the given exit code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// isSilentExit reports whether err is a bare ExitError whose message has
// already been printed by the command itself.
func isSilentExit(err error) bool {
	var exitErr *ExitError
	return stderrors.As(err, &exitErr)
}

// ExitCode maps an Execute error to a process exit code. ExitError wins;
// otherwise the CLIError category decides; anything else is a plain failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Prerequisite:
			return ExitMissingInput
		}
	}

	return ExitFailure
}
