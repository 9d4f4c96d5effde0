// SPDX-FileCopyrightText: 2026 The fixrun authors
//
// SPDX-License-Identifier: GPL-3.0-or-later

package report

import (
	"fmt"
	"io"

	"github.com/cavaliergopher/cpio"
	"gopkg.in/yaml.v3"
)

const (
	summaryFileName = "report.yaml"

	dirMode  = cpio.TypeDir | 0o755
	fileMode = cpio.TypeReg | 0o644

	numLinks = 2
)

// WriteBundle writes the report into a cpio archive on the given writer.
//
// The archive contains a top level summary file and one directory per case
// with the captured stdout and stderr logs. Entries are written in result
// order, so the archive is deterministic for a deterministic run.
func (r *Report) WriteBundle(w io.Writer) error {
	writer := cpio.NewWriter(w)

	err := r.writeSummary(writer)
	if err != nil {
		return err
	}

	for _, result := range r.Results {
		err := writeResult(writer, result)
		if err != nil {
			return fmt.Errorf("case %s: %w", result.Name, err)
		}
	}

	err = writer.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (r *Report) writeSummary(writer *cpio.Writer) error {
	summary := struct {
		Cases []Result `yaml:"cases"`
	}{
		Cases: r.Results,
	}

	data, err := yaml.Marshal(&summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	return writeFile(writer, summaryFileName, data)
}

func writeResult(writer *cpio.Writer, result Result) error {
	err := writeDirectory(writer, result.Name)
	if err != nil {
		return err
	}

	err = writeFile(writer, result.Name+"/stdout.log", result.Stdout)
	if err != nil {
		return err
	}

	return writeFile(writer, result.Name+"/stderr.log", result.Stderr)
}

func writeDirectory(writer *cpio.Writer, path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  dirMode,
		Links: numLinks,
	}

	err := writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	return nil
}

func writeFile(writer *cpio.Writer, path string, data []byte) error {
	header := &cpio.Header{
		Name: path,
		Mode: fileMode,
		Size: int64(len(data)),
	}

	err := writer.WriteHeader(header)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", path, err)
	}

	_, err = writer.Write(data)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
