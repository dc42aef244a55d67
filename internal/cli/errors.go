package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ExitCoder is implemented by errors that carry a specific process
// exit code.
type ExitCoder interface {
	ExitCode() int
}

// WarningsError is the semantic outcome of a run that found warnings
// or key mismatches. It is not printed; the warnings already were.
type WarningsError struct {
	Count int
}

// Error implements the error interface.
func (e *WarningsError) Error() string {
	return fmt.Sprintf("found %d %s", e.Count, pluralizeWarning(e.Count))
}

// ExitCode returns the exit code for found warnings (always 1).
func (e *WarningsError) ExitCode() int { return 1 }

// UnknownCommandError is returned when the first argument matched no
// known route.
type UnknownCommandError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// ExitCode returns the exit code for an unknown command (always 1).
func (e *UnknownCommandError) ExitCode() int { return 1 }

// UsageError wraps a parse failure together with the command whose
// usage should be shown.
type UsageError struct {
	Command *cobra.Command
	Err     error
}

// Error implements the error interface.
func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying parse failure.
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode returns the exit code for a usage error (always 1).
func (e *UsageError) ExitCode() int { return 1 }

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

func pluralizeWarning(n int) string {
	if n == 1 {
		return "warning"
	}
	return "warnings"
}
