// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mock_test

import (
	"testing"

	"github.com/fixrun/fixrun/internal/mock"
	"github.com/stretchr/testify/assert"
)

func TestFunction1(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		expected int
	}{
		{
			name:     "default",
			expected: 42,
		},
		{
			name:     "override",
			env:      "23",
			expected: 23,
		},
		{
			name:     "negative override",
			env:      "-1",
			expected: -1,
		},
		{
			name:     "invalid override ignored",
			env:      "fortytwo",
			expected: 42,
		},
		{
			name:     "empty override ignored",
			env:      "",
			expected: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.name != "default" {
				t.Setenv(mock.EnvValue1, tt.env)
			}

			assert.Equal(t, tt.expected, mock.Function1())
		})
	}
}

func TestFunction2(t *testing.T) {
	assert.Equal(t, 84, mock.Function2())

	t.Setenv(mock.EnvValue2, "168")
	assert.Equal(t, 168, mock.Function2())
}
