// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocessors turns input files into the clause text the engine
// consumes. Plain-text files are read directly; PDF documents go through
// text extraction.
package preprocessors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clause-scan/internal/preprocessors/pdftext"
)

// maxFileSize bounds direct file reads; clause analysis targets excerpts.
const maxFileSize = 10 << 20 // 10MB

// CanProcess reports whether the file extension has a registered reader.
func CanProcess(filePath string) bool {
	switch normalizedExt(filePath) {
	case ".txt", ".md", ".text", "", ".pdf":
		return true
	default:
		return false
	}
}

// ReadClauseText extracts clause text from the given file.
func ReadClauseText(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("error reading input file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input path is a directory, expected a file: %s", filePath)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("input file too large (%d bytes, limit %d)", info.Size(), maxFileSize)
	}

	switch normalizedExt(filePath) {
	case ".pdf":
		content, err := pdftext.ExtractText(filePath)
		if err != nil {
			return "", fmt.Errorf("error extracting PDF text: %w", err)
		}
		return content.Text, nil
	case ".txt", ".md", ".text", "":
		data, err := os.ReadFile(filepath.Clean(filePath))
		if err != nil {
			return "", fmt.Errorf("error reading input file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type %q (supported: .txt, .md, .pdf)", normalizedExt(filePath))
	}
}

func normalizedExt(filePath string) string {
	return strings.ToLower(filepath.Ext(filePath))
}
