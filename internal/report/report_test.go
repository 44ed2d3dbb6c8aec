// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

func TestAssembleRecommendationSplit(t *testing.T) {
	rep := Assemble(Input{
		Ambiguities: []detector.Finding{
			{Issue: "a", Recommendation: "define the term", RiskLevel: detector.RiskMedium, Weight: 2},
		},
		Risks: []detector.Finding{
			{Issue: "b", Recommendation: "cap the liability", RiskLevel: detector.RiskCritical, Weight: 4},
			{Issue: "c", Recommendation: "narrow the assignment", RiskLevel: detector.RiskHigh, Weight: 3},
		},
		ContractType:    catalog.GeneralContract,
		OverallSeverity: detector.RiskCritical,
	})

	if got := rep.Recommendations.Immediate; len(got) != 2 || got[0] != "cap the liability" || got[1] != "narrow the assignment" {
		t.Errorf("Immediate = %v", got)
	}
	if got := rep.Recommendations.General; len(got) != 1 || got[0] != "define the term" {
		t.Errorf("General = %v", got)
	}
	if rep.Summary.TotalIssues != 3 {
		t.Errorf("TotalIssues = %d, want 3", rep.Summary.TotalIssues)
	}
}

func TestKeyFindings(t *testing.T) {
	cases := []struct {
		name         string
		total        int
		severity     detector.RiskLevel
		contractType string
		want         []string
	}{
		{
			"clean clause", 0, detector.RiskLow, catalog.GeneralContract,
			[]string{"No major legal issues detected in this clause"},
		},
		{
			"single issue", 1, detector.RiskMedium, catalog.GeneralContract,
			[]string{"Found 1 legal concern requiring attention"},
		},
		{
			"critical typed contract", 3, detector.RiskCritical, "Employment Agreement",
			[]string{
				"Found 3 legal concerns requiring attention",
				"CRITICAL RISK: Immediate legal review strongly recommended",
				"Detected as Employment Agreement - specialized analysis applied",
			},
		},
		{
			"high severity general", 2, detector.RiskHigh, catalog.GeneralContract,
			[]string{
				"Found 2 legal concerns requiring attention",
				"HIGH RISK: Immediate legal review strongly recommended",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := keyFindings(tc.total, tc.severity, tc.contractType)
			if len(got) != len(tc.want) {
				t.Fatalf("keyFindings = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestLegalReferences(t *testing.T) {
	t.Run("base only", func(t *testing.T) {
		refs := legalReferences("the parties shall cooperate")
		if len(refs) != 2 {
			t.Fatalf("refs = %v", refs)
		}
		if refs[0] != "Restatement (Second) of Contracts" || refs[1] != "Uniform Commercial Code (UCC)" {
			t.Errorf("base refs = %v", refs)
		}
	})

	t.Run("arbitration triggers FAA", func(t *testing.T) {
		refs := legalReferences("disputes resolved by binding arbitration")
		found := false
		for _, r := range refs {
			if r == "Federal Arbitration Act" {
				found = true
			}
		}
		if !found {
			t.Errorf("refs = %v, want Federal Arbitration Act", refs)
		}
	})

	t.Run("truncated to maximum", func(t *testing.T) {
		text := "arbitration over best efforts and liquidated damages with a class action waiver and liability for damages"
		refs := legalReferences(text)
		if len(refs) != catalog.MaxLegalReferences {
			t.Errorf("len(refs) = %d, want %d: %v", len(refs), catalog.MaxLegalReferences, refs)
		}
	})

	t.Run("no duplicates", func(t *testing.T) {
		refs := legalReferences("arbitration before an arbitrator")
		seen := make(map[string]bool)
		for _, r := range refs {
			if seen[r] {
				t.Errorf("duplicate reference %q in %v", r, refs)
			}
			seen[r] = true
		}
	})
}

func TestAssembleEmptyBuckets(t *testing.T) {
	rep := Assemble(Input{ContractType: catalog.GeneralContract, OverallSeverity: detector.RiskLow})
	if rep.DetailedAnalysis.Ambiguities == nil || rep.DetailedAnalysis.Risks == nil || rep.DetailedAnalysis.MissingProtections == nil {
		t.Errorf("detailed analysis buckets must serialize as [], not null")
	}
	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), `"ambiguities":null`) {
		t.Errorf("ambiguities serialized as null: %s", data)
	}
}

func TestAssembleMetadata(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	rep := Assemble(Input{ContractType: catalog.GeneralContract, Version: "2.0.0-development", Now: now})
	if rep.Metadata.AnalysisDate != "2025-03-14 09:26:53" {
		t.Errorf("AnalysisDate = %q", rep.Metadata.AnalysisDate)
	}
	if rep.Metadata.AnalysisVersion != "2.0.0-development" {
		t.Errorf("AnalysisVersion = %q", rep.Metadata.AnalysisVersion)
	}
	if rep.Metadata.Disclaimer != Disclaimer {
		t.Errorf("Disclaimer = %q", rep.Metadata.Disclaimer)
	}
}

func TestValidationErrorShape(t *testing.T) {
	rep := ValidationError()
	if !rep.IsError() {
		t.Fatal("IsError() = false")
	}
	data, err := json.Marshal(rep)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"error":"Please provide a clause to analyze"}`
	if string(data) != want {
		t.Errorf("serialized = %s, want %s", data, want)
	}
}

func TestFailureReportShape(t *testing.T) {
	rep := FailureReport("regex engine fault", "2.0.0-development")
	if !rep.IsError() {
		t.Fatal("IsError() = false")
	}
	if rep.Error != "Analysis failed: regex engine fault" {
		t.Errorf("Error = %q", rep.Error)
	}
	if rep.Summary.OverallSeverity != detector.RiskUnknown {
		t.Errorf("OverallSeverity = %s, want UNKNOWN", rep.Summary.OverallSeverity)
	}
	if len(rep.Recommendations.Immediate) != 1 || rep.Recommendations.Immediate[0] != "Please retry the analysis or consult legal counsel" {
		t.Errorf("Immediate = %v", rep.Recommendations.Immediate)
	}
}
