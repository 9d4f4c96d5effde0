// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package runner runs fixture binaries and verifies their behavior. It
// captures the process output, extracts the exit code trailer if present, and
// checks the observed exit code and output against the expectations of the
// command spec.
package runner
