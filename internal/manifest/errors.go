// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import "errors"

var (
	// ErrNoCases is returned if the manifest does not contain any case.
	ErrNoCases = errors.New("manifest contains no cases")

	// ErrNoName is returned if a case has no name.
	ErrNoName = errors.New("case name must not be empty")

	// ErrDuplicateName is returned if two cases share a name.
	ErrDuplicateName = errors.New("case name used more than once")

	// ErrNoProgram is returned if a case does not name a program.
	ErrNoProgram = errors.New("case program must not be empty")

	// ErrNegativeTimeout is returned if a case timeout is negative.
	ErrNegativeTimeout = errors.New("case timeout must not be negative")
)
