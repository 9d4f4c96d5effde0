// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import "errors"

var (
	// ErrEmptyExecutable is returned if a [CommandSpec] has no executable.
	ErrEmptyExecutable = errors.New("no executable given")

	// ErrExitCodeMismatch is returned if the process exit code does not
	// match the expected one.
	ErrExitCodeMismatch = errors.New("unexpected exit code")

	// ErrStdoutMismatch is returned if an expected stdout line was not
	// found in the process output.
	ErrStdoutMismatch = errors.New("expected stdout not found")

	// ErrStderrMismatch is returned if an expected stderr line was not
	// found in the process error output.
	ErrStderrMismatch = errors.New("expected stderr not found")

	// ErrNoExitCodeFound is returned if a required exit code trailer was
	// not printed by the process.
	ErrNoExitCodeFound = errors.New("process did not print exit code trailer")

	// ErrExitCodeConflict is returned if the exit code trailer disagrees
	// with the actual process exit code.
	ErrExitCodeConflict = errors.New(
		"exit code trailer differs from process exit code",
	)
)

// CommandError wraps any expectation failure detected for a command run.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "command: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (e *CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
