// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/fixrun/fixrun/internal/fixture"
)

// Command is a single fixture command that can be run.
type Command struct {
	spec CommandSpec
}

// NewCommand creates a new [Command] for the given spec.
func NewCommand(spec CommandSpec) (*Command, error) {
	if spec.Executable == "" {
		return nil, ErrEmptyExecutable
	}

	return &Command{spec: spec}, nil
}

// String returns the command line the command runs.
func (c *Command) String() string {
	elems := append([]string{c.spec.Executable}, c.spec.Args...)
	return strings.Join(elems, " ")
}

// Run runs the command with the given context and applies the spec's
// expectations once the process terminated.
//
// The process stdout and stderr are copied to the given writers. The returned
// exit code is the actual process exit code, which may differ from the
// expected one. Expectation failures are returned as [CommandError].
func (c *Command) Run(
	ctx context.Context,
	stdout, stderr io.Writer,
) (int, error) {
	if c.spec.Timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.spec.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.spec.Executable, c.spec.Args...)
	cmd.Dir = c.spec.Dir
	cmd.Env = c.environ()

	// Ensure the fixture does not outlive the runner.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: unix.SIGKILL,
	}

	var errBuf bytes.Buffer

	cmd.Stderr = io.MultiWriter(stderr, &errBuf)

	out, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("start: %w", err)
	}

	parser := newStdoutParser(c.spec.Expect.Stdout)

	parserGroup := errgroup.Group{}
	parserGroup.Go(func() error {
		return parser.consume(stdout, out)
	})

	// The pipe must be drained before Wait closes it.
	parseErr := parserGroup.Wait()

	waitErr := cmd.Wait()
	exitCode := cmd.ProcessState.ExitCode()

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return exitCode, fmt.Errorf("wait: %w", waitErr)
	}

	if ctx.Err() != nil {
		return exitCode, fmt.Errorf("run: %w", ctx.Err())
	}

	if parseErr != nil {
		return exitCode, parseErr
	}

	return exitCode, c.evaluate(exitCode, parser, errBuf.String())
}

// environ compiles the process environment. The spec environment is appended
// to the runner's own in stable order, so later entries win.
func (c *Command) environ() []string {
	env := os.Environ()

	if c.spec.Expect.Trailer {
		env = append(env, fixture.EnvTrailer+"=1")
	}

	keys := make([]string, 0, len(c.spec.Env))
	for key := range c.spec.Env {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		env = append(env, key+"="+c.spec.Env[key])
	}

	return env
}

func (c *Command) evaluate(
	exitCode int,
	parser *stdoutParser,
	stderr string,
) error {
	failed := func(err error) error {
		return &CommandError{Err: err, ExitCode: exitCode}
	}

	expect := c.spec.Expect

	if exitCode != expect.ExitCode {
		return failed(fmt.Errorf(
			"%w: got %d, want %d",
			ErrExitCodeMismatch, exitCode, expect.ExitCode,
		))
	}

	if expect.Trailer {
		switch {
		case !parser.trailerFound:
			return failed(ErrNoExitCodeFound)
		case parser.trailerCode != exitCode:
			return failed(fmt.Errorf(
				"%w: trailer %d, process %d",
				ErrExitCodeConflict, parser.trailerCode, exitCode,
			))
		}
	}

	if unmatched := parser.unmatched(); len(unmatched) > 0 {
		return failed(fmt.Errorf("%w: %q", ErrStdoutMismatch, unmatched[0]))
	}

	if missing, found := matchOrdered(expect.Stderr, stderr); !found {
		return failed(fmt.Errorf("%w: %q", ErrStderrMismatch, missing))
	}

	return nil
}

// matchOrdered searches the given substrings in the output in order. It
// returns the first substring not found, if any.
func matchOrdered(expected []string, output string) (string, bool) {
	pos := 0

	for _, substr := range expected {
		idx := strings.Index(output[pos:], substr)
		if idx < 0 {
			return substr, false
		}

		pos += idx + len(substr)
	}

	return "", true
}
