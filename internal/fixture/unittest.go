// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import (
	"fmt"
)

// Expected return values the unit test asserts. Deliberately independent of
// the mock library defaults, since the point of the fixture is to detect a
// substituted implementation returning something else.
const (
	expectedValue1 = 42
	expectedValue2 = 84
)

// ValueError describes an unexpected mock function return value.
type ValueError struct {
	Name     string
	Actual   int
	Expected int
}

// Error implements the [error] interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf(
		"%s returned %d, expected %d",
		e.Name, e.Actual, e.Expected,
	)
}

// Is implements the [errors.Is] interface.
func (e *ValueError) Is(other error) bool {
	_, ok := other.(*ValueError)
	return ok
}

// UnitTest runs the verification program. The checks run in order and the
// first failing check terminates the program, so the second function is never
// invoked once the first check failed.
func UnitTest(cfg IO, funcs Funcs) int {
	err := checkValue(funcs.Function1, "mock function 1", expectedValue1)
	if err == nil {
		err = checkValue(funcs.Function2, "mock function 2", expectedValue2)
	}

	if err != nil {
		fmt.Fprintf(cfg.Stderr, "Test failed: %v\n", err)
		return finish(cfg.Stdout, 1)
	}

	fmt.Fprintln(cfg.Stdout, "All tests passed!")

	return finish(cfg.Stdout, 0)
}

func checkValue(fn func() int, name string, expected int) error {
	actual := fn()
	if actual != expected {
		return &ValueError{
			Name:     name,
			Actual:   actual,
			Expected: expected,
		}
	}

	return nil
}
