// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"time"
)

// Set on build.
var version = "dev"

type flags struct {
	name string

	manifestPath FilePath
	bundlePath   FilePath
	jobs         uint
	timeout      time.Duration
	caseNames    []string

	versionFlag bool
	debugFlag   bool
	flagSet     *flag.FlagSet
}

func newFlags(name string, output io.Writer) *flags {
	f := &flags{
		name: name,
		jobs: 1,
	}

	f.initFlagSet(output)

	return f
}

func (f *flags) initFlagSet(output io.Writer) {
	fsName := f.name + " [flags...] [case names...]"
	fs := flag.NewFlagSet(fsName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Var(
		&f.manifestPath,
		"manifest",
		"path to the case manifest file",
	)

	fs.Var(
		&f.bundlePath,
		"bundle",
		"write captured outputs and summary as cpio archive to this path",
	)

	fs.UintVar(
		&f.jobs,
		"jobs",
		f.jobs,
		"number of cases to run in parallel",
	)

	fs.DurationVar(
		&f.timeout,
		"timeout",
		f.timeout,
		"default timeout per case. 0 means no limit",
	)

	fs.BoolVar(
		&f.debugFlag,
		"debug",
		f.debugFlag,
		"enable debug output",
	)

	fs.BoolVar(
		&f.versionFlag,
		"version",
		f.versionFlag,
		"show version and exit",
	)

	f.flagSet = fs
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n\n", f.name, version)
	fmt.Fprintln(f.flagSet.Output(), buildInfo.String())
}

func (f *flags) parseArgs(args []string) error {
	if err := f.flagSet.Parse(args); err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using
	// [flag.ErrHelp] the main binary is supposed to return with a non error
	// exit code.
	if f.versionFlag {
		f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: flag.ErrHelp}
	}

	if f.manifestPath == "" {
		return f.fail("no manifest given (use -manifest)", nil)
	}

	if f.jobs < 1 {
		return f.fail("jobs must be at least 1", nil)
	}

	if f.timeout < 0 {
		return f.fail("timeout must not be negative", nil)
	}

	// Positional arguments select a subset of the manifest cases by name.
	f.caseNames = f.flagSet.Args()

	return nil
}
