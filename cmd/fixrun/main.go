// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// fixrun runs fixture binaries against a case manifest and verifies their
// exit codes and output.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fixrun/fixrun/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGABRT,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	)
	defer cancel()

	cfg := cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	exitCode := cmd.Run(ctx, "fixrun", os.Args[1:], cfg)

	cancel()
	os.Exit(exitCode)
}
