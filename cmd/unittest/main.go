// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// unittest is the verification fixture. It asserts the mock library return
// values and exits 1 on the first mismatch.
package main

import (
	"os"

	"github.com/fixrun/fixrun/internal/fixture"
)

func main() {
	cfg := fixture.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	os.Exit(fixture.UnitTest(cfg, fixture.Mocks()))
}
