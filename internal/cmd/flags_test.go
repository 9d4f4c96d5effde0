// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsParseArgs(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
		assert      func(t *testing.T, f *flags)
	}{
		{
			name: "manifest only",
			args: []string{"-manifest", "cases.yaml"},
			assert: func(t *testing.T, f *flags) {
				assert.NotEmpty(t, f.manifestPath)
				assert.Equal(t, uint(1), f.jobs)
				assert.Zero(t, f.timeout)
				assert.Empty(t, f.caseNames)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-manifest", "cases.yaml",
				"-bundle", "out.cpio",
				"-jobs", "4",
				"-timeout", "30s",
				"-debug",
			},
			assert: func(t *testing.T, f *flags) {
				assert.NotEmpty(t, f.bundlePath)
				assert.Equal(t, uint(4), f.jobs)
				assert.Equal(t, 30*time.Second, f.timeout)
				assert.True(t, f.debugFlag)
			},
		},
		{
			name: "case names",
			args: []string{"-manifest", "cases.yaml", "component", "unittest"},
			assert: func(t *testing.T, f *flags) {
				assert.Equal(t, []string{"component", "unittest"}, f.caseNames)
			},
		},
		{
			name:        "no manifest",
			args:        []string{},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "zero jobs",
			args:        []string{"-manifest", "cases.yaml", "-jobs", "0"},
			expectedErr: &ParseArgsError{},
		},
		{
			name: "negative timeout",
			args: []string{
				"-manifest", "cases.yaml",
				"-timeout", "-5s",
			},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "unknown flag",
			args:        []string{"-manifest", "cases.yaml", "-bogus"},
			expectedErr: &ParseArgsError{},
		},
		{
			name:        "help",
			args:        []string{"-help"},
			expectedErr: flag.ErrHelp,
		},
		{
			name:        "version",
			args:        []string{"-version"},
			expectedErr: flag.ErrHelp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer

			f := newFlags("fixrun", &output)

			err := f.parseArgs(tt.args)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			tt.assert(t, f)
		})
	}
}
