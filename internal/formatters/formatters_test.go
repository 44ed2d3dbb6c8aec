// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters_test

import (
	"encoding/json"
	"strings"
	"testing"

	"clause-scan/internal/detector"
	"clause-scan/internal/formatters"
	"clause-scan/internal/report"

	_ "clause-scan/internal/formatters/json"
	_ "clause-scan/internal/formatters/text"
	_ "clause-scan/internal/formatters/yaml"

	goyaml "gopkg.in/yaml.v3"
)

func sampleReport() *report.AnalysisReport {
	return report.Assemble(report.Input{
		Ambiguities: []detector.Finding{
			{
				Issue:          `Ambiguous term: "reasonable"`,
				Description:    "Subjective standard open to interpretation",
				PlainEnglish:   "What counts as reasonable is not defined",
				Recommendation: "Define the standard objectively",
				RiskLevel:      detector.RiskMedium,
				Weight:         2,
			},
		},
		Risks: []detector.Finding{
			{
				Issue:          "High-risk clause: Unlimited liability exposure",
				Description:    "No cap on damages",
				PlainEnglish:   "You could owe more than the contract is worth",
				Recommendation: "Cap liability at fees paid",
				RiskLevel:      detector.RiskCritical,
				Weight:         4,
			},
		},
		ContractType:    "Service Agreement",
		OverallSeverity: detector.RiskCritical,
		Version:         "2.0.0-development",
	})
}

func TestRegistryHasStandardFormats(t *testing.T) {
	for _, name := range []string{"json", "yaml", "text"} {
		if _, ok := formatters.Get(name); !ok {
			t.Errorf("formatter %q not registered", name)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := formatters.Export("xml", sampleReport(), formatters.FormatterOptions{})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format 'xml'") {
		t.Errorf("error = %v", err)
	}
}

func TestJSONRoundTrips(t *testing.T) {
	out, err := formatters.Export("json", sampleReport(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	var decoded report.AnalysisReport
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Summary.OverallSeverity != detector.RiskCritical {
		t.Errorf("overallSeverity = %s", decoded.Summary.OverallSeverity)
	}
}

func TestYAMLParses(t *testing.T) {
	out, err := formatters.Export("yaml", sampleReport(), formatters.FormatterOptions{})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := goyaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if _, ok := decoded["summary"]; !ok {
		t.Errorf("yaml output missing summary: %s", out)
	}
}

func TestTextOutput(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Clause Analysis Summary",
		"Contract Type:    Service Agreement",
		"Overall Severity: CRITICAL",
		"Ambiguous Terms",
		"High-Risk Clauses",
		"Recommendations",
		"Cap liability at fees paid",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	// Plain-English lines only appear in verbose mode.
	if strings.Contains(out, "In plain English") {
		t.Errorf("non-verbose output carries plain-English detail")
	}
}

func TestTextVerbose(t *testing.T) {
	out, err := formatters.Export("text", sampleReport(), formatters.FormatterOptions{NoColor: true, Verbose: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "In plain English: What counts as reasonable is not defined") {
		t.Errorf("verbose output missing plain-English detail:\n%s", out)
	}
}

func TestTextErrorReport(t *testing.T) {
	out, err := formatters.Export("text", report.ValidationError(), formatters.FormatterOptions{NoColor: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Error: Please provide a clause to analyze") {
		t.Errorf("error output = %q", out)
	}
	if strings.Contains(out, "Clause Analysis Summary") {
		t.Errorf("error output carries summary section")
	}
}

func TestGetFormatInfo(t *testing.T) {
	info := formatters.GetFormatInfo("json")
	if info.MimeType != "application/json" || info.Extension != ".json" {
		t.Errorf("json info = %+v", info)
	}
	if formatters.GetFormatInfo("nope").Name != "" {
		t.Error("expected zero FormatInfo for unknown formatter")
	}
}
