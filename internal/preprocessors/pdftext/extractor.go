// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdftext

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// TextContent represents the extracted text content from a PDF document
type TextContent struct {
	Filename  string
	Text      string
	PageCount int
	WordCount int
	CharCount int
}

// maxPages bounds extraction time on very large documents; contract clause
// analysis targets short excerpts, not whole filings.
const maxPages = 50

// ExtractText extracts plain text from a PDF document.
func ExtractText(filePath string) (*TextContent, error) {
	content := &TextContent{
		Filename: filepath.Base(filePath),
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return content, fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	content.PageCount = r.NumPage()
	if content.PageCount > maxPages {
		content.PageCount = maxPages
	}

	var buf bytes.Buffer
	for i := 1; i <= content.PageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := extractPageText(p)
		if err != nil {
			continue // skip unreadable pages, keep the rest
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	content.Text = buf.String()
	content.CharCount = len(content.Text)
	content.WordCount = len(strings.Fields(content.Text))
	return content, nil
}

// extractPageText joins the page's text rows top-to-bottom with word spacing.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("error reading page text: %w", err)
	}

	var sb strings.Builder
	for _, row := range rows {
		var words []string
		for _, word := range row.Content {
			if text := strings.TrimSpace(word.S); text != "" {
				words = append(words, text)
			}
		}
		if len(words) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(words, " "))
	}
	return sb.String(), nil
}
