// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fixture

import (
	"fmt"
)

// Component runs the demonstration program. It prints the values returned by
// the given functions and always succeeds, whatever the values are.
func Component(cfg IO, funcs Funcs) int {
	fmt.Fprintln(cfg.Stdout, "Test Component Implementation")
	fmt.Fprintf(cfg.Stdout, "Mock function 1 returns: %d\n", funcs.Function1())
	fmt.Fprintf(cfg.Stdout, "Mock function 2 returns: %d\n", funcs.Function2())

	return finish(cfg.Stdout, 0)
}
