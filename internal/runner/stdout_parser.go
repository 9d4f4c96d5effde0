// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package runner

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fixrun/fixrun/internal/exitcode"
)

// stdoutParser consumes the process stdout line by line.
//
// Lines are copied to the destination writer unchanged. While copying, the
// parser matches the pending expected substrings in order and extracts the
// exit code trailer once it shows up.
type stdoutParser struct {
	pending []string

	trailerCode  int
	trailerFound bool
}

func newStdoutParser(expected []string) *stdoutParser {
	return &stdoutParser{
		// Copy so matching does not consume the caller's slice.
		pending: append([]string{}, expected...),
	}
}

// parseLine processes a single line of output.
func (p *stdoutParser) parseLine(line string) {
	if !p.trailerFound {
		p.trailerCode, p.trailerFound = exitcode.Parse(line)
	}

	if len(p.pending) > 0 && strings.Contains(line, p.pending[0]) {
		p.pending = p.pending[1:]
	}
}

// consume reads all lines from src, feeding each into the parser and copying
// it to dst. It returns once src is exhausted.
func (p *stdoutParser) consume(dst io.Writer, src io.Reader) error {
	scanner := bufio.NewScanner(src)

	for scanner.Scan() {
		line := scanner.Text()
		p.parseLine(line)

		if _, err := fmt.Fprintln(dst, line); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	return nil
}

// unmatched returns the expected substrings that have not been found yet.
func (p *stdoutParser) unmatched() []string {
	return p.pending
}
