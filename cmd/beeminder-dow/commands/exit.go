package commands

import (
	"errors"
	"fmt"
	"io"

	"beeminder-dow/internal/domain"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
	exitAuth    = 3
)

// usageError marks bad command-line input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// report prints err for the user and returns the matching exit code.
func report(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}
	var ue usageError
	switch {
	case errors.Is(err, domain.ErrGoalNotFound):
		fmt.Fprintln(stdout, "Goal not found")
		return exitFailure
	case errors.As(err, &ue):
		fmt.Fprintf(stderr, "error: %v\nRun 'beeminder-dow --help' for usage.\n", err)
		return exitUsage
	case errors.Is(err, domain.ErrUnauthorized):
		fmt.Fprintf(stderr, "error: %v\nCheck the token in your api key file.\n", err)
		return exitAuth
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
}
