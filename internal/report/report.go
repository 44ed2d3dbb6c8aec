// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report defines the analysis report shape shared by the CLI, the
// web server, and every output formatter.
package report

import "clause-scan/internal/detector"

// Summary is the top-level digest of one analysis.
type Summary struct {
	ContractType    string             `json:"contractType,omitempty" yaml:"contractType,omitempty"`
	OverallSeverity detector.RiskLevel `json:"overallSeverity" yaml:"overallSeverity"`
	TotalIssues     int                `json:"totalIssues" yaml:"totalIssues"`
	KeyFindings     []string           `json:"keyFindings,omitempty" yaml:"keyFindings,omitempty"`
}

// DetailedAnalysis carries the per-finding buckets.
type DetailedAnalysis struct {
	Ambiguities        []detector.Finding          `json:"ambiguities" yaml:"ambiguities"`
	Risks              []detector.Finding          `json:"risks" yaml:"risks"`
	MissingProtections []detector.MissingProtection `json:"missingProtections" yaml:"missingProtections"`
}

// Recommendations splits drafting advice by urgency. A finding's
// recommendation lands in Immediate iff its risk level is HIGH or CRITICAL.
type Recommendations struct {
	Immediate []string `json:"immediate" yaml:"immediate"`
	General   []string `json:"general" yaml:"general"`
}

// PlainEnglishExplanation is the non-lawyer narrative of the analysis.
type PlainEnglishExplanation struct {
	WhatThisMeans []string `json:"whatThisMeans" yaml:"whatThisMeans"`
	WhyItMatters  string   `json:"whyItMatters" yaml:"whyItMatters"`
	NextSteps     string   `json:"nextSteps" yaml:"nextSteps"`
}

// Metadata describes the analysis run itself.
type Metadata struct {
	AnalysisVersion string `json:"analysisVersion" yaml:"analysisVersion"`
	AnalysisDate    string `json:"analysisDate,omitempty" yaml:"analysisDate,omitempty"`
	Disclaimer      string `json:"disclaimer,omitempty" yaml:"disclaimer,omitempty"`
}

// AnalysisReport is the full result of one analysis call. Error-path reports
// populate Error and leave the other sections nil, so serialized error
// reports carry no partial findings.
type AnalysisReport struct {
	Error            string                   `json:"error,omitempty" yaml:"error,omitempty"`
	Summary          *Summary                 `json:"summary,omitempty" yaml:"summary,omitempty"`
	DetailedAnalysis *DetailedAnalysis        `json:"detailedAnalysis,omitempty" yaml:"detailedAnalysis,omitempty"`
	Recommendations  *Recommendations         `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	PlainEnglish     *PlainEnglishExplanation `json:"plainEnglishExplanation,omitempty" yaml:"plainEnglishExplanation,omitempty"`
	LegalReferences  []string                 `json:"legalReferences,omitempty" yaml:"legalReferences,omitempty"`
	Metadata         *Metadata                `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// IsError reports whether this is an error-shaped report.
func (r *AnalysisReport) IsError() bool {
	return r.Error != ""
}

// EmptyInputMessage is the only user-facing validation error the engine emits.
const EmptyInputMessage = "Please provide a clause to analyze"

// Disclaimer accompanies every successful report.
const Disclaimer = "This analysis is for informational purposes only and does not constitute legal advice."

// ValidationError builds the empty-input error report: exactly one error
// field, nothing else populated.
func ValidationError() *AnalysisReport {
	return &AnalysisReport{Error: EmptyInputMessage}
}

// FailureReport builds the best-effort report returned when analysis faults
// unexpectedly. Callers can always render it; the engine never crashes past
// its boundary.
func FailureReport(message string, version string) *AnalysisReport {
	return &AnalysisReport{
		Error:   "Analysis failed: " + message,
		Summary: &Summary{OverallSeverity: detector.RiskUnknown},
		Recommendations: &Recommendations{
			Immediate: []string{"Please retry the analysis or consult legal counsel"},
			General:   []string{},
		},
		Metadata: &Metadata{AnalysisVersion: version},
	}
}
