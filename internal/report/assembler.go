// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"time"

	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

// Input carries the combined analyzer output into the assembler.
type Input struct {
	Ambiguities        []detector.Finding
	Risks              []detector.Finding
	MissingProtections []detector.MissingProtection
	ContractType       string
	OverallSeverity    detector.RiskLevel

	// Normalized clause text, used by the legal-reference rules.
	Normalized string

	Version string
	Now     time.Time
}

// Assemble merges analyzer output into one AnalysisReport.
func Assemble(in Input) *AnalysisReport {
	findings := make([]detector.Finding, 0, len(in.Ambiguities)+len(in.Risks))
	findings = append(findings, in.Ambiguities...)
	findings = append(findings, in.Risks...)
	totalIssues := len(findings)

	recommendations := &Recommendations{Immediate: []string{}, General: []string{}}
	whatThisMeans := make([]string, 0, len(findings))
	for _, f := range findings {
		if f.RiskLevel.AtLeast(detector.RiskHigh) {
			recommendations.Immediate = append(recommendations.Immediate, f.Recommendation)
		} else {
			recommendations.General = append(recommendations.General, f.Recommendation)
		}
		whatThisMeans = append(whatThisMeans, f.PlainEnglish)
	}

	severity := in.OverallSeverity
	if severity == "" {
		severity = detector.RiskLow
	}

	summary := &Summary{
		ContractType:    in.ContractType,
		OverallSeverity: severity,
		TotalIssues:     totalIssues,
		KeyFindings:     keyFindings(totalIssues, severity, in.ContractType),
	}

	detailed := &DetailedAnalysis{
		Ambiguities:        emptyIfNil(in.Ambiguities),
		Risks:              emptyIfNil(in.Risks),
		MissingProtections: emptyProtectionsIfNil(in.MissingProtections),
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	return &AnalysisReport{
		Summary:          summary,
		DetailedAnalysis: detailed,
		Recommendations:  recommendations,
		PlainEnglish: &PlainEnglishExplanation{
			WhatThisMeans: whatThisMeans,
			WhyItMatters:  "Legal language can hide important risks and obligations. This analysis helps you understand what you're agreeing to in simple terms.",
			NextSteps:     "Consider consulting with a qualified attorney for complex agreements, high-value transactions, or when critical risks are identified.",
		},
		LegalReferences: legalReferences(in.Normalized),
		Metadata: &Metadata{
			AnalysisVersion: in.Version,
			AnalysisDate:    now.Format("2006-01-02 15:04:05"),
			Disclaimer:      Disclaimer,
		},
	}
}

// keyFindings builds the narrative summary lines by fixed rules: always a
// count line, a warning line for HIGH/CRITICAL severity, and a detection
// line when a specific contract type was inferred.
func keyFindings(totalIssues int, severity detector.RiskLevel, contractType string) []string {
	var lines []string

	switch totalIssues {
	case 0:
		lines = append(lines, "No major legal issues detected in this clause")
	case 1:
		lines = append(lines, "Found 1 legal concern requiring attention")
	default:
		lines = append(lines, fmt.Sprintf("Found %d legal concerns requiring attention", totalIssues))
	}

	if severity.AtLeast(detector.RiskHigh) {
		lines = append(lines, fmt.Sprintf("%s RISK: Immediate legal review strongly recommended", severity))
	}

	if contractType != "" && contractType != catalog.GeneralContract {
		lines = append(lines, fmt.Sprintf("Detected as %s - specialized analysis applied", contractType))
	}

	return lines
}

// legalReferences starts from the fixed base list, appends rule-triggered
// references in rule order, and truncates to the catalog maximum.
func legalReferences(normalized string) []string {
	refs := append([]string{}, catalog.BaseReferences()...)
	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		seen[ref] = true
	}

	for _, rule := range catalog.ReferenceRules() {
		if seen[rule.Reference] {
			continue
		}
		for _, keyword := range rule.Keywords {
			if (detector.LiteralRule{Term: keyword}).Matches(normalized) {
				refs = append(refs, rule.Reference)
				seen[rule.Reference] = true
				break
			}
		}
	}

	if len(refs) > catalog.MaxLegalReferences {
		refs = refs[:catalog.MaxLegalReferences]
	}
	return refs
}

func emptyIfNil(findings []detector.Finding) []detector.Finding {
	if findings == nil {
		return []detector.Finding{}
	}
	return findings
}

func emptyProtectionsIfNil(missing []detector.MissingProtection) []detector.MissingProtection {
	if missing == nil {
		return []detector.MissingProtection{}
	}
	return missing
}
