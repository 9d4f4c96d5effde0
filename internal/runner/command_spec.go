// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"time"
)

// Expect defines the assertions applied to a command run.
type Expect struct {
	// Exit code the process must return.
	ExitCode int

	// Substrings that must appear in the process stdout, in the given
	// order. Each entry matches at most one line.
	Stdout []string

	// Substrings that must appear in the process stderr, in the given
	// order.
	Stderr []string

	// Require the process to print the exit code trailer as defined by the
	// exitcode package. The trailer value must match the actual process
	// exit code.
	Trailer bool
}

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path to the fixture binary to run.
	Executable string

	// Arguments passed to the process.
	Args []string

	// Additional environment variables for the process. They are appended
	// to the current process environment.
	Env map[string]string

	// Working directory for the process. Empty means the current one.
	Dir string

	// Maximum runtime of the process. Zero means no limit.
	Timeout time.Duration

	// Assertions applied once the process terminated.
	Expect Expect
}
