// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textmine salvages a structured report from unstructured
// model-generated analysis text. It is an optional collaborator behind the
// same report shape as the deterministic engine and is never imported by it;
// callers bring their own generated text, no inference happens here.
package textmine

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"clause-scan/internal/detector"
	"clause-scan/internal/report"
	"clause-scan/internal/version"
)

// jsonObjectPattern finds the first brace-delimited block in generated text.
var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// Keyword sets for sentence scanning, one per report bucket.
var (
	ambiguityKeywords      = []string{"ambiguous", "unclear", "vague", "indefinite"}
	riskKeywords           = []string{"risk", "liability", "danger", "concern", "problem"}
	recommendationKeywords = []string{"recommend", "suggest", "should", "must", "need"}
)

// minSentenceLength filters out fragments during sentence scanning.
const minSentenceLength = 20

// maxPerBucket caps how many scanned sentences land in each bucket.
const maxPerBucket = 3

// generatedAnalysis is the JSON shape a model is prompted to emit.
type generatedAnalysis struct {
	Ambiguities     []string `json:"ambiguities"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
	MissingElements []string `json:"missingElements"`
	References      []string `json:"references"`
}

// ExtractReport builds an AnalysisReport from model-generated analysis text.
// It first tries to parse an embedded JSON object matching the prompt shape;
// when that fails it falls back to keyword-windowed sentence scanning over
// the generated text combined with simple keyword rules over the clause.
func ExtractReport(generated string, clause string) *report.AnalysisReport {
	if parsed, ok := parseEmbeddedJSON(generated); ok {
		return fromGenerated(parsed)
	}
	return fromSentenceScan(generated, clause)
}

// parseEmbeddedJSON attempts to locate and unmarshal a JSON object inside
// free-form generated text.
func parseEmbeddedJSON(generated string) (*generatedAnalysis, bool) {
	block := jsonObjectPattern.FindString(generated)
	if block == "" {
		return nil, false
	}
	var parsed generatedAnalysis
	if err := json.Unmarshal([]byte(block), &parsed); err != nil {
		return nil, false
	}
	// An object with none of the expected fields is not a usable analysis.
	if len(parsed.Ambiguities) == 0 && len(parsed.Risks) == 0 && len(parsed.Recommendations) == 0 {
		return nil, false
	}
	return &parsed, true
}

// fromGenerated maps a parsed model analysis onto the report shape. Model
// findings carry no catalog weight, so they are reported at MEDIUM and the
// overall severity stays heuristic.
func fromGenerated(parsed *generatedAnalysis) *report.AnalysisReport {
	ambiguities := toFindings(parsed.Ambiguities, "Ambiguity", detector.CategoryAmbiguity)
	risks := toFindings(parsed.Risks, "Risk", detector.CategoryRisk)

	rep := assembleBase(ambiguities, risks, parsed.MissingElements)
	rep.Recommendations.General = append(rep.Recommendations.General, parsed.Recommendations...)
	if len(parsed.References) > 0 {
		rep.LegalReferences = parsed.References
	}
	return rep
}

// fromSentenceScan builds a best-effort report when no JSON could be parsed.
func fromSentenceScan(generated string, clause string) *report.AnalysisReport {
	normalized := detector.Normalize(clause)

	var ambiguityNotes, riskNotes, recommendationNotes []string

	// Basic keyword rules over the clause itself.
	if strings.Contains(normalized, "reasonable") {
		ambiguityNotes = append(ambiguityNotes, "Term 'reasonable' is subjective and may lead to disputes")
		recommendationNotes = append(recommendationNotes, "Define specific criteria for what constitutes 'reasonable'")
	}
	if strings.Contains(normalized, "best efforts") {
		ambiguityNotes = append(ambiguityNotes, "'Best efforts' standard is vague and difficult to enforce")
		recommendationNotes = append(recommendationNotes, "Replace with 'commercially reasonable efforts' or specific performance metrics")
	}
	if strings.Contains(normalized, "material") && strings.Contains(normalized, "breach") {
		ambiguityNotes = append(ambiguityNotes, "Definition of 'material breach' is not specified")
		recommendationNotes = append(recommendationNotes, "Define what constitutes a material breach with specific examples")
	}
	if strings.Contains(normalized, "confidential") {
		riskNotes = append(riskNotes, "Scope of confidentiality obligations may be overly broad")
		recommendationNotes = append(recommendationNotes, "Clearly define what information is considered confidential")
	}
	if strings.Contains(normalized, "terminate") {
		riskNotes = append(riskNotes, "Termination conditions and procedures may be unclear")
		recommendationNotes = append(recommendationNotes, "Specify exact termination procedures and notice requirements")
	}

	// Salvage relevant sentences from the generated text.
	ambiguityNotes = append(ambiguityNotes, scanSentences(generated, ambiguityKeywords)...)
	riskNotes = append(riskNotes, scanSentences(generated, riskKeywords)...)
	recommendationNotes = append(recommendationNotes, scanSentences(generated, recommendationKeywords)...)

	ambiguities := toFindings(ambiguityNotes, "Ambiguity", detector.CategoryAmbiguity)
	risks := toFindings(riskNotes, "Risk", detector.CategoryRisk)

	rep := assembleBase(ambiguities, risks, []string{
		"Governing law clause may be missing",
		"Dispute resolution mechanism should be specified",
	})
	rep.Recommendations.General = append(rep.Recommendations.General, recommendationNotes...)
	rep.LegalReferences = []string{
		"Contract law fundamentals",
		"Industry standard practices",
	}
	return rep
}

// scanSentences returns sentences containing any of the keywords, longest
// window first in document order, capped at maxPerBucket.
func scanSentences(text string, keywords []string) []string {
	var relevant []string
	for _, sentence := range strings.Split(text, ".") {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= minSentenceLength {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				relevant = append(relevant, sentence)
				break
			}
		}
		if len(relevant) >= maxPerBucket {
			break
		}
	}
	return relevant
}

// toFindings wraps free-text notes into report findings at MEDIUM risk.
func toFindings(notes []string, label string, category string) []detector.Finding {
	findings := make([]detector.Finding, 0, len(notes))
	for _, note := range notes {
		findings = append(findings, detector.Finding{
			Issue:          label + ": " + truncate(note, 80),
			Description:    note,
			PlainEnglish:   note,
			Recommendation: "Review this point with qualified legal counsel",
			RiskLevel:      detector.RiskMedium,
			Weight:         2,
			Category:       category,
		})
	}
	return findings
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// assembleBase builds the common report scaffolding for both salvage paths.
func assembleBase(ambiguities, risks []detector.Finding, missingElements []string) *report.AnalysisReport {
	missing := make([]detector.MissingProtection, 0, len(missingElements))
	for _, element := range missingElements {
		missing = append(missing, detector.MissingProtection{
			Element:        element,
			Description:    "Reported by model-generated analysis",
			PlainEnglish:   element,
			Recommendation: "Verify this protection with qualified legal counsel",
		})
	}

	totalIssues := len(ambiguities) + len(risks)
	overall := detector.RiskLow
	if totalIssues > 0 {
		overall = detector.RiskMedium
	}

	whatThisMeans := make([]string, 0, totalIssues)
	for _, f := range append(append([]detector.Finding{}, ambiguities...), risks...) {
		whatThisMeans = append(whatThisMeans, f.PlainEnglish)
	}

	keyFinding := "No major legal issues detected in this clause"
	if totalIssues == 1 {
		keyFinding = "Found 1 legal concern requiring attention"
	} else if totalIssues > 1 {
		keyFinding = fmt.Sprintf("Found %d legal concerns requiring attention", totalIssues)
	}

	return &report.AnalysisReport{
		Summary: &report.Summary{
			ContractType:    "General Contract",
			OverallSeverity: overall,
			TotalIssues:     totalIssues,
			KeyFindings:     []string{keyFinding},
		},
		DetailedAnalysis: &report.DetailedAnalysis{
			Ambiguities:        ambiguities,
			Risks:              risks,
			MissingProtections: missing,
		},
		Recommendations: &report.Recommendations{Immediate: []string{}, General: []string{}},
		PlainEnglish: &report.PlainEnglishExplanation{
			WhatThisMeans: whatThisMeans,
			WhyItMatters:  "Legal language can hide important risks and obligations. This analysis helps you understand what you're agreeing to in simple terms.",
			NextSteps:     "Model-salvaged analysis is best-effort; consult qualified legal counsel before relying on it.",
		},
		Metadata: &report.Metadata{
			AnalysisVersion: version.Short() + "-textmine",
			AnalysisDate:    time.Now().Format("2006-01-02 15:04:05"),
			Disclaimer:      report.Disclaimer,
		},
	}
}
