// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/fixrun/fixrun/internal/exitcode"
	"github.com/fixrun/fixrun/internal/manifest"
	"github.com/fixrun/fixrun/internal/report"
	"github.com/fixrun/fixrun/internal/runner"
)

const localConfigFile = ".fixrun-args"

// IO provides output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func parseFlags(name string, args []string, cfg IO) (*flags, error) {
	merged, err := MergedArgs(args, os.DirFS("."), localConfigFile)
	if err != nil {
		return nil, err
	}

	flags := newFlags(name, cfg.Stderr)

	err = flags.parseArgs(merged)
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func loadManifest(path string) (*manifest.Manifest, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	m, err := manifest.Load(file)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	return m, nil
}

// selectCases returns the cases matching the given names, in the given
// order. Without names, all manifest cases are returned.
func selectCases(
	m *manifest.Manifest,
	names []string,
) ([]manifest.Case, error) {
	if len(names) == 0 {
		return m.Cases, nil
	}

	byName := make(map[string]manifest.Case, len(m.Cases))
	for _, c := range m.Cases {
		byName[c.Name] = c
	}

	cases := make([]manifest.Case, 0, len(names))

	for _, name := range names {
		c, exists := byName[name]
		if !exists {
			return nil, fmt.Errorf("%q: %w", name, ErrCaseUnknown)
		}

		cases = append(cases, c)
	}

	return cases, nil
}

// runCases runs all given cases with bounded parallelism. Case failures are
// recorded in the report, they do not abort the other cases.
func runCases(
	ctx context.Context,
	cases []manifest.Case,
	flags *flags,
) *report.Report {
	results := make([]report.Result, len(cases))

	group := errgroup.Group{}
	group.SetLimit(int(flags.jobs))

	for idx, c := range cases {
		group.Go(func() error {
			results[idx] = runCase(ctx, c, flags)
			return nil
		})
	}

	_ = group.Wait()

	return &report.Report{Results: results}
}

func runCase(
	ctx context.Context,
	c manifest.Case,
	flags *flags,
) report.Result {
	result := report.Result{
		Name: c.Name,
	}

	cmd, err := runner.NewCommand(c.CommandSpec(flags.timeout))
	if err != nil {
		result.Failure = err.Error()
		return result
	}

	result.Command = cmd.String()

	slog.Debug("Running case",
		slog.String("case", c.Name),
		slog.String("command", result.Command))

	var stdout, stderr bytes.Buffer

	exitCode, err := cmd.Run(ctx, &stdout, &stderr)

	result.ExitCode = exitCode
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()
	result.Passed = err == nil

	if err != nil {
		result.Failure = err.Error()
	}

	return result
}

func writeReport(r *report.Report, cfg IO) {
	for _, result := range r.Results {
		if result.Passed {
			slog.Info("Case passed",
				slog.String("case", result.Name),
				slog.Int("exitcode", result.ExitCode))

			continue
		}

		slog.Error("Case failed",
			slog.String("case", result.Name),
			slog.Int("exitcode", result.ExitCode),
			slog.String("reason", result.Failure))

		// Captured output of failed cases is replayed so the log alone is
		// enough to diagnose the failure.
		_, _ = cfg.Stdout.Write(result.Stdout)
		_, _ = cfg.Stderr.Write(result.Stderr)
	}

	fmt.Fprintf(
		cfg.Stdout,
		"%d cases, %d failed\n",
		len(r.Results), r.Failed(),
	)
}

func writeBundle(r *report.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}

	err = r.WriteBundle(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("write bundle: %w", err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("close bundle: %w", err)
	}

	slog.Debug("Wrote bundle archive", slog.String("path", path))

	return nil
}

func run(ctx context.Context, flags *flags, cfg IO) error {
	m, err := loadManifest(string(flags.manifestPath))
	if err != nil {
		return err
	}

	cases, err := selectCases(m, flags.caseNames)
	if err != nil {
		return err
	}

	r := runCases(ctx, cases, flags)

	writeReport(r, cfg)

	if flags.bundlePath != "" {
		err = writeBundle(r, string(flags.bundlePath))
		if err != nil {
			return err
		}
	}

	if !r.Passed() {
		return fmt.Errorf("%d cases failed: %w", r.Failed(), exitcode.Error(1))
	}

	return nil
}

func handleParseArgsError(err error) int {
	// [flag.ErrHelp] is returned when help is requested. So exit without
	// error in this case.
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}

	// parseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	code, isExitErr := exitcode.From(err)

	// Do not log in case the cases ran and failures were already reported.
	if !isExitErr {
		slog.Error(err.Error())
	}

	return code
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, name string, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	flags, err := parseFlags(name, args, cfg)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debugFlag)

	err = run(ctx, flags, cfg)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
