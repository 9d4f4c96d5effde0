// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package manifest

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a [time.Duration] that unmarshals from the usual duration
// string notation, like "10s" or "1m30s".
type Duration time.Duration

// String implements the [fmt.Stringer] interface.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var value string

	err := node.Decode(&value)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse duration: %w", err)
	}

	*d = Duration(parsed)

	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
