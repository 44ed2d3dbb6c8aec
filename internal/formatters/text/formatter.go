// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"clause-scan/internal/detector"
	"clause-scan/internal/formatters"
	"clause-scan/internal/report"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[detector.RiskLevel]*color.Color
	header *color.Color
	label  *color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[detector.RiskLevel]*color.Color{
			detector.RiskLow:      color.New(color.FgGreen),
			detector.RiskMedium:   color.New(color.FgYellow),
			detector.RiskHigh:     color.New(color.FgRed),
			detector.RiskCritical: color.New(color.FgRed, color.Bold),
			detector.RiskUnknown:  color.New(color.FgMagenta),
		},
		header: color.New(color.FgCyan, color.Bold),
		label:  color.New(color.FgWhite, color.Bold),
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(rep *report.AnalysisReport, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder

	if rep.IsError() {
		fmt.Fprintf(&builder, "Error: %s\n", rep.Error)
		if rep.Recommendations != nil {
			for _, rec := range rep.Recommendations.Immediate {
				fmt.Fprintf(&builder, "  %s\n", rec)
			}
		}
		return builder.String(), nil
	}

	f.appendSummary(&builder, rep)
	f.appendFindings(&builder, "Ambiguous Terms", rep.DetailedAnalysis.Ambiguities, options)
	f.appendFindings(&builder, "High-Risk Clauses", rep.DetailedAnalysis.Risks, options)
	f.appendMissingProtections(&builder, rep.DetailedAnalysis.MissingProtections)
	f.appendRecommendations(&builder, rep.Recommendations)

	if len(rep.LegalReferences) > 0 {
		f.header.Fprintln(&builder, "Legal References")
		for _, ref := range rep.LegalReferences {
			fmt.Fprintf(&builder, "  - %s\n", ref)
		}
		builder.WriteString("\n")
	}

	if rep.Metadata != nil {
		fmt.Fprintf(&builder, "Analysis version %s (%s)\n", rep.Metadata.AnalysisVersion, rep.Metadata.AnalysisDate)
		if rep.Metadata.Disclaimer != "" {
			fmt.Fprintf(&builder, "%s\n", rep.Metadata.Disclaimer)
		}
	}

	return builder.String(), nil
}

func (f *Formatter) severityColor(level detector.RiskLevel) *color.Color {
	if c, ok := f.colors[level]; ok {
		return c
	}
	return color.New(color.FgWhite)
}

func (f *Formatter) appendSummary(builder *strings.Builder, rep *report.AnalysisReport) {
	f.header.Fprintln(builder, "Clause Analysis Summary")
	fmt.Fprintf(builder, "  Contract Type:    %s\n", rep.Summary.ContractType)
	fmt.Fprintf(builder, "  Overall Severity: %s\n", f.severityColor(rep.Summary.OverallSeverity).Sprint(rep.Summary.OverallSeverity))
	fmt.Fprintf(builder, "  Total Issues:     %d\n", rep.Summary.TotalIssues)
	for _, line := range rep.Summary.KeyFindings {
		fmt.Fprintf(builder, "  * %s\n", line)
	}
	builder.WriteString("\n")
}

func (f *Formatter) appendFindings(builder *strings.Builder, title string, findings []detector.Finding, options formatters.FormatterOptions) {
	if len(findings) == 0 {
		return
	}
	f.header.Fprintln(builder, title)
	for _, finding := range findings {
		fmt.Fprintf(builder, "  [%s] %s\n", f.severityColor(finding.RiskLevel).Sprint(finding.RiskLevel), finding.Issue)
		fmt.Fprintf(builder, "      %s\n", finding.Description)
		if options.Verbose {
			fmt.Fprintf(builder, "      In plain English: %s\n", finding.PlainEnglish)
		}
		fmt.Fprintf(builder, "      Recommendation: %s\n", finding.Recommendation)
	}
	builder.WriteString("\n")
}

func (f *Formatter) appendMissingProtections(builder *strings.Builder, missing []detector.MissingProtection) {
	if len(missing) == 0 {
		return
	}
	f.header.Fprintln(builder, "Missing Protections")
	for _, m := range missing {
		fmt.Fprintf(builder, "  - %s\n", f.label.Sprint(m.Element))
		fmt.Fprintf(builder, "      %s\n", m.Description)
		fmt.Fprintf(builder, "      Recommendation: %s\n", m.Recommendation)
	}
	builder.WriteString("\n")
}

func (f *Formatter) appendRecommendations(builder *strings.Builder, recs *report.Recommendations) {
	if recs == nil || (len(recs.Immediate) == 0 && len(recs.General) == 0) {
		return
	}
	f.header.Fprintln(builder, "Recommendations")
	if len(recs.Immediate) > 0 {
		f.label.Fprintln(builder, "  Immediate:")
		for _, rec := range recs.Immediate {
			fmt.Fprintf(builder, "    - %s\n", rec)
		}
	}
	if len(recs.General) > 0 {
		f.label.Fprintln(builder, "  General:")
		for _, rec := range recs.General {
			fmt.Fprintf(builder, "    - %s\n", rec)
		}
	}
	builder.WriteString("\n")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
