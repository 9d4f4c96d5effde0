// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// component is the demonstration fixture. It prints the values returned by
// the mock library and always exits 0.
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

	os.Exit(fixture.Component(cfg, fixture.Mocks()))
}
