// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for fixrun. It handles
// flag parsing, error handling, and output handling.
package cmd
