// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"fmt"

	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

// Analyzer implements the detector.Analyzer interface for detecting
// high-risk clause signatures using regex patterns.
type Analyzer struct {
	patterns []catalog.PatternEntry
}

// NewAnalyzer creates an Analyzer backed by the static high-risk pattern table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{patterns: catalog.HighRiskPatterns()}
}

func (a *Analyzer) Name() string {
	return "RISK"
}

// Analyze tests each high-risk pattern against the normalized clause text.
// A pattern matching anywhere yields exactly one finding.
func (a *Analyzer) Analyze(normalized string) []detector.Finding {
	var findings []detector.Finding
	for _, entry := range a.patterns {
		if !entry.Rule.Matches(normalized) {
			continue
		}
		findings = append(findings, detector.Finding{
			Issue:          fmt.Sprintf("High-risk clause: %s", entry.Name),
			Description:    entry.Description,
			PlainEnglish:   entry.PlainEnglish,
			Recommendation: entry.Recommendation,
			RiskLevel:      detector.RiskLevelForWeight(entry.Weight),
			Weight:         entry.Weight,
			Category:       detector.CategoryRisk,
		})
	}
	return findings
}
