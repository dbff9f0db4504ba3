package git

import (
	"fmt"
	"strings"
)

// Error is returned when a git command fails, either because git exited with
// a non-zero status, or because it couldn't be run at all.
type Error struct {
	// Args are the git arguments, without the program name
	Args []string

	// Stderr is git's decoded standard error output
	Stderr string

	// ExitCode is git's exit status, or -1 when git never ran to completion
	ExitCode int

	// Err is the underlying cause of a spawn failure, nil otherwise
	Err error
}

// newError keeps a copy of args, since callers may reuse their buffer
func newError(args []string, res Result, cause error) *Error {
	e := &Error{
		Args:     append([]string(nil), args...),
		Stderr:   string(res.Stderr),
		ExitCode: res.ExitCode,
		Err:      cause,
	}
	if cause != nil {
		e.ExitCode = -1
	}
	return e
}

func (e *Error) Error() string {
	detail := e.Stderr
	if e.Err != nil {
		detail = e.Err.Error()
	}

	return fmt.Sprintf("Failed to run `git %s`: %s", strings.Join(e.Args, " "), detail)
}

// Unwrap gives access to the spawn failure cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// IsSpawnFailure tells whether git could not be started (or was interrupted),
// as opposed to having run and exited with an error status.
func (e *Error) IsSpawnFailure() bool {
	return e.Err != nil
}
