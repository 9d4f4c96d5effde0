// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"fmt"
	"io"
	"strings"
)

// Identifier is the identifier string for communicating an exit code via
// stdout.
//
// Fixture programs append a trailer line with this identifier when asked to,
// so a collector that only sees captured logs can still recover the process
// status.
const Identifier = "FIXRUN_EXIT_CODE"

const format = Identifier + ": %d"

// Sprint creates the full trailer string with the given exit code.
func Sprint(exitCode int) string {
	return fmt.Sprintf(format, exitCode)
}

// Fprint writes the full trailer line with the given exit code into the given
// writer.
func Fprint(w io.Writer, exitCode int) (int, error) {
	return fmt.Fprintf(w, format+"\n", exitCode) //nolint:wrapcheck
}

// Parse parses the given string for the exit code trailer.
//
// The identifier can be anywhere in the string. It does not need to be at the
// beginning. Returns the exit code and whether it was found in the given
// string.
func Parse(str string) (int, bool) {
	start := strings.Index(str, Identifier)
	if start < 0 {
		return 0, false
	}

	var exitCode int
	if _, err := fmt.Sscanf(str[start:], format, &exitCode); err != nil {
		return 0, false
	}

	return exitCode, true
}
