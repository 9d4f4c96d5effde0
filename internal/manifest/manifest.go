// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package manifest defines the YAML case list the runner works through. Each
// case names a fixture binary and the expectations applied to its run.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fixrun/fixrun/internal/runner"
)

// Expect defines the assertions for a single case.
type Expect struct {
	ExitCode int      `yaml:"exit-code"`
	Stdout   []string `yaml:"stdout"`
	Stderr   []string `yaml:"stderr"`
	Trailer  bool     `yaml:"trailer"`
}

// Case describes a single fixture run.
type Case struct {
	Name    string            `yaml:"name"`
	Program string            `yaml:"program"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
	Dir     string            `yaml:"dir"`
	Timeout Duration          `yaml:"timeout"`
	Expect  Expect            `yaml:"expect"`
}

// CommandSpec converts the case into a spec the runner can work with. The
// default timeout applies if the case does not set its own.
func (c *Case) CommandSpec(defaultTimeout time.Duration) runner.CommandSpec {
	timeout := time.Duration(c.Timeout)
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return runner.CommandSpec{
		Executable: c.Program,
		Args:       c.Args,
		Env:        c.Env,
		Dir:        c.Dir,
		Timeout:    timeout,
		Expect: runner.Expect{
			ExitCode: c.Expect.ExitCode,
			Stdout:   c.Expect.Stdout,
			Stderr:   c.Expect.Stderr,
			Trailer:  c.Expect.Trailer,
		},
	}
}

// Manifest is a list of cases to run.
type Manifest struct {
	Cases []Case `yaml:"cases"`
}

// Load reads and validates a manifest from the given reader. Unknown fields
// are rejected.
func Load(r io.Reader) (*Manifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var manifest Manifest

	err := decoder.Decode(&manifest)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCases
		}

		return nil, fmt.Errorf("decode: %w", err)
	}

	err = manifest.Validate()
	if err != nil {
		return nil, err
	}

	return &manifest, nil
}

// Validate checks the manifest for consistency.
func (m *Manifest) Validate() error {
	if len(m.Cases) == 0 {
		return ErrNoCases
	}

	seen := make(map[string]bool, len(m.Cases))

	for idx, c := range m.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: %w", idx, ErrNoName)
		}

		if seen[c.Name] {
			return fmt.Errorf("case %q: %w", c.Name, ErrDuplicateName)
		}

		seen[c.Name] = true

		if c.Program == "" {
			return fmt.Errorf("case %q: %w", c.Name, ErrNoProgram)
		}

		if c.Timeout < 0 {
			return fmt.Errorf("case %q: %w", c.Name, ErrNegativeTimeout)
		}
	}

	return nil
}
