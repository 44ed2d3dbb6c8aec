// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ambiguity

import (
	"fmt"

	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

// Analyzer implements the detector.Analyzer interface for detecting
// ambiguous legal terms by literal substring matching.
type Analyzer struct {
	terms []catalog.TermEntry
}

// NewAnalyzer creates an Analyzer backed by the static ambiguous-term table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{terms: catalog.AmbiguousTerms()}
}

func (a *Analyzer) Name() string {
	return "AMBIGUITY"
}

// Analyze scans the normalized clause text for ambiguous terms. Each term
// yields at most one finding regardless of how often it appears; entries are
// tested independently, so overlapping terms all fire.
func (a *Analyzer) Analyze(normalized string) []detector.Finding {
	var findings []detector.Finding
	for _, entry := range a.terms {
		rule := detector.LiteralRule{Term: entry.Term}
		if !rule.Matches(normalized) {
			continue
		}
		findings = append(findings, detector.Finding{
			Issue:          fmt.Sprintf("Ambiguous term: %q", entry.Term),
			Description:    entry.Description,
			PlainEnglish:   entry.PlainEnglish,
			Recommendation: entry.Recommendation,
			RiskLevel:      detector.RiskLevelForWeight(entry.Weight),
			Weight:         entry.Weight,
			Category:       detector.CategoryAmbiguity,
		})
	}
	return findings
}
