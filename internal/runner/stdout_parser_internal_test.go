// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"bytes"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdoutParser_Consume(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		expected        []string
		expectedOut     string
		unmatched       []string
		trailerCode     int
		assertTrailerOK assert.BoolAssertionFunc
	}{
		{
			name:            "empty input",
			expected:        []string{"hello"},
			unmatched:       []string{"hello"},
			assertTrailerOK: assert.False,
		},
		{
			name:            "all matched in order",
			input:           "first line\nsecond line\n",
			expected:        []string{"first", "second"},
			expectedOut:     "first line\nsecond line\n",
			unmatched:       []string{},
			assertTrailerOK: assert.False,
		},
		{
			name:            "out of order stops matching",
			input:           "second line\nfirst line\n",
			expected:        []string{"first", "second"},
			expectedOut:     "second line\nfirst line\n",
			unmatched:       []string{"second"},
			assertTrailerOK: assert.False,
		},
		{
			name:            "trailer extracted",
			input:           "some output\nFIXRUN_EXIT_CODE: 7\n",
			expectedOut:     "some output\nFIXRUN_EXIT_CODE: 7\n",
			unmatched:       []string{},
			trailerCode:     7,
			assertTrailerOK: assert.True,
		},
		{
			name:            "first trailer wins",
			input:           "FIXRUN_EXIT_CODE: 1\nFIXRUN_EXIT_CODE: 2\n",
			expectedOut:     "FIXRUN_EXIT_CODE: 1\nFIXRUN_EXIT_CODE: 2\n",
			unmatched:       []string{},
			trailerCode:     1,
			assertTrailerOK: assert.True,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			parser := newStdoutParser(tt.expected)

			err := parser.consume(&out, strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, tt.expectedOut, out.String())
			assert.Equal(t, tt.unmatched, parser.unmatched())
			assert.Equal(t, tt.trailerCode, parser.trailerCode)
			tt.assertTrailerOK(t, parser.trailerFound)
		})
	}
}

func TestStdoutParser_ConsumeReadError(t *testing.T) {
	parser := newStdoutParser(nil)

	err := parser.consume(&bytes.Buffer{}, iotest.TimeoutReader(
		strings.NewReader(strings.Repeat("line\n", 1024)),
	))
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestMatchOrdered(t *testing.T) {
	tests := []struct {
		name         string
		expected     []string
		output       string
		missing      string
		assertResult assert.BoolAssertionFunc
	}{
		{
			name:         "nothing expected",
			output:       "anything",
			assertResult: assert.True,
		},
		{
			name:         "found in order",
			expected:     []string{"one", "two"},
			output:       "line one\nline two\n",
			assertResult: assert.True,
		},
		{
			name:         "wrong order",
			expected:     []string{"two", "one"},
			output:       "line one\nline two\n",
			missing:      "one",
			assertResult: assert.False,
		},
		{
			name:         "missing",
			expected:     []string{"three"},
			output:       "line one\nline two\n",
			missing:      "three",
			assertResult: assert.False,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, found := matchOrdered(tt.expected, tt.output)

			tt.assertResult(t, found)
			assert.Equal(t, tt.missing, missing)
		})
	}
}
