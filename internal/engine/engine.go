// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine orchestrates one analysis pass: matchers, gap detection,
// contract-type classification, severity aggregation, and report assembly.
package engine

import (
	"fmt"
	"strings"
	"time"

	"clause-scan/internal/analyzers/ambiguity"
	"clause-scan/internal/analyzers/contracttype"
	"clause-scan/internal/analyzers/gaps"
	"clause-scan/internal/analyzers/risk"
	"clause-scan/internal/detector"
	"clause-scan/internal/report"
	"clause-scan/internal/severity"
	"clause-scan/internal/version"
)

// Check names accepted by ParseChecksToRun and Options.Checks.
const (
	CheckAmbiguity    = "AMBIGUITY"
	CheckRisk         = "RISK"
	CheckGaps         = "GAPS"
	CheckContractType = "CONTRACT_TYPE"
)

// Options selects which checks run. A nil or all-true Checks map runs
// everything; this is what Analyze uses.
type Options struct {
	Checks map[string]bool
}

// Analyze runs the full analysis pipeline over one clause. It is stateless
// and safe to call concurrently: every read is against the immutable pattern
// catalog and every write is to call-local structures.
func Analyze(clause string) *report.AnalysisReport {
	return AnalyzeWithOptions(clause, Options{})
}

// AnalyzeWithOptions runs the pipeline with a check subset enabled. The
// engine never panics past its boundary; unexpected faults resolve to a
// best-effort failure report.
func AnalyzeWithOptions(clause string, opts Options) (rep *report.AnalysisReport) {
	defer func() {
		if r := recover(); r != nil {
			rep = report.FailureReport(fmt.Sprint(r), version.Short())
		}
	}()

	// Empty input is the only validation-error path; no further work happens.
	if strings.TrimSpace(clause) == "" {
		return report.ValidationError()
	}

	normalized := detector.Normalize(clause)
	enabled := func(check string) bool {
		if opts.Checks == nil {
			return true
		}
		return opts.Checks[check]
	}

	var ambiguities, risks []detector.Finding
	if enabled(CheckAmbiguity) {
		ambiguities = ambiguity.NewAnalyzer().Analyze(normalized)
	}
	if enabled(CheckRisk) {
		risks = risk.NewAnalyzer().Analyze(normalized)
	}

	var missing []detector.MissingProtection
	if enabled(CheckGaps) {
		missing = gaps.NewDetector().Detect(normalized)
	}

	contractType := ""
	if enabled(CheckContractType) {
		contractType = contracttype.NewClassifier().Classify(normalized)
	}

	// Severity aggregates matcher findings only; missing protections are
	// reported but carry no weight.
	findings := make([]detector.Finding, 0, len(ambiguities)+len(risks))
	findings = append(findings, ambiguities...)
	findings = append(findings, risks...)
	overall := severity.AggregateFindings(findings)

	return report.Assemble(report.Input{
		Ambiguities:        ambiguities,
		Risks:              risks,
		MissingProtections: missing,
		ContractType:       contractType,
		OverallSeverity:    overall,
		Normalized:         normalized,
		Version:            version.Short(),
		Now:                time.Now(),
	})
}

// ParseChecksToRun converts a slice of check names into an enabled-checks
// map. An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[string]bool {
	result := map[string]bool{
		CheckAmbiguity:    false,
		CheckRisk:         false,
		CheckGaps:         false,
		CheckContractType: false,
	}

	if len(checks) == 0 || (len(checks) == 1 && strings.TrimSpace(checks[0]) == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		if checkStr := strings.ToUpper(strings.TrimSpace(check)); checkStr != "" {
			if _, exists := result[checkStr]; exists {
				result[checkStr] = true
			}
		}
	}

	return result
}
