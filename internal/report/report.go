// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package report collects case results and bundles them into a single
// archive, the way build systems collect undeclared test outputs.
package report

// Result describes the outcome of a single case run.
type Result struct {
	Name     string `yaml:"name"`
	Command  string `yaml:"command"`
	ExitCode int    `yaml:"exit-code"`
	Passed   bool   `yaml:"passed"`
	Failure  string `yaml:"failure,omitempty"`

	Stdout []byte `yaml:"-"`
	Stderr []byte `yaml:"-"`
}

// Report is the list of results of a complete run.
type Report struct {
	Results []Result
}

// Add appends a result.
func (r *Report) Add(result Result) {
	r.Results = append(r.Results, result)
}

// Passed returns true if all results passed. An empty report has not passed.
func (r *Report) Passed() bool {
	if len(r.Results) == 0 {
		return false
	}

	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}

	return true
}

// Failed returns the number of failed cases.
func (r *Report) Failed() int {
	failed := 0

	for _, result := range r.Results {
		if !result.Passed {
			failed++
		}
	}

	return failed
}
