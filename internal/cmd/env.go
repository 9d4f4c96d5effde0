// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// EnvArgs returns fixrun arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv("FIXRUN_ARGS"))
}

// LocalConfigArgs returns fixrun arguments from a local config file.
//
// The file's format is one argument per line. Environment variables may be
// used and are expanded with [os.ExpandEnv].
func LocalConfigArgs(fsys fs.FS, file string) ([]string, error) {
	conf, err := fs.ReadFile(fsys, file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	args := []string{}

	expandedConf := os.ExpandEnv(string(conf))
	for line := range strings.SplitSeq(expandedConf, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			args = append(args, line)
		}
	}

	return args, nil
}

// MergedArgs merges arguments from all sources. Command line arguments come
// last, so they take precedence over environment and local config file.
func MergedArgs(
	args []string,
	fsys fs.FS,
	localConfigFile string,
) ([]string, error) {
	fileArgs, err := LocalConfigArgs(fsys, localConfigFile)
	if err != nil {
		return nil, fmt.Errorf("local config: %w", err)
	}

	merged := EnvArgs()
	merged = append(merged, fileArgs...)
	merged = append(merged, args...)

	return merged, nil
}
