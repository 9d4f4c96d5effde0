// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mock provides the stand-in library the fixture programs link
// against. The functions return fixed values by default. The environment may
// substitute other values, the same way a build system would substitute
// another implementation of the library at link time.
package mock

import (
	"os"
	"strconv"
)

// Default return values of the mock functions.
const (
	DefaultValue1 = 42
	DefaultValue2 = 84
)

// Environment variables overriding the mock return values.
const (
	EnvValue1 = "FIXRUN_MOCK_1"
	EnvValue2 = "FIXRUN_MOCK_2"
)

// Function1 returns the first mock value.
func Function1() int {
	return value(EnvValue1, DefaultValue1)
}

// Function2 returns the second mock value.
func Function2() int {
	return value(EnvValue2, DefaultValue2)
}

// value reads the override from the environment. Values that do not parse as
// integer are ignored.
func value(envVar string, defaultValue int) int {
	override, exists := os.LookupEnv(envVar)
	if !exists {
		return defaultValue
	}

	parsed, err := strconv.Atoi(override)
	if err != nil {
		return defaultValue
	}

	return parsed
}
