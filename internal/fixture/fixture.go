// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fixture implements the two fixture programs used to validate
// build-rule definitions: a demonstration component that prints the values
// returned by the mock library, and a unit test that asserts them.
package fixture

import (
	"io"
	"os"

	"github.com/fixrun/fixrun/internal/exitcode"
	"github.com/fixrun/fixrun/internal/mock"
)

// EnvTrailer makes the fixture programs append the exit code trailer line to
// stdout when set. The runner sets it so log-only collectors can recover the
// process status.
const EnvTrailer = "FIXRUN_EXIT_TRAILER"

// IO provides the output streams for a fixture program.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Funcs holds the externally supplied integer functions the fixtures call.
type Funcs struct {
	Function1 func() int
	Function2 func() int
}

// Mocks returns the [Funcs] backed by the mock library.
func Mocks() Funcs {
	return Funcs{
		Function1: mock.Function1,
		Function2: mock.Function2,
	}
}

// finish emits the exit code trailer if requested and returns the given exit
// code unchanged.
func finish(w io.Writer, code int) int {
	if os.Getenv(EnvTrailer) != "" {
		_, _ = exitcode.Fprint(w, code)
	}

	return code
}
