// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"testing"
)

func TestRiskLevelForWeight(t *testing.T) {
	cases := []struct {
		weight int
		want   RiskLevel
	}{
		{0, RiskLow},
		{1, RiskMedium},
		{2, RiskHigh},
		{3, RiskCritical},
		{4, RiskCritical}, // saturates
		{9, RiskCritical},
		{-1, RiskLow}, // clamps
	}
	for _, tc := range cases {
		if got := RiskLevelForWeight(tc.weight); got != tc.want {
			t.Errorf("RiskLevelForWeight(%d) = %s, want %s", tc.weight, got, tc.want)
		}
	}
}

func TestRiskLevelOrdering(t *testing.T) {
	ordered := []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}
	for i, lower := range ordered {
		for j, higher := range ordered {
			got := higher.AtLeast(lower)
			want := j >= i
			if got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", higher, lower, got, want)
			}
		}
	}
}

func TestRiskLevelUnknownNeverAtLeast(t *testing.T) {
	if RiskUnknown.AtLeast(RiskLow) {
		t.Error("UNKNOWN should not satisfy AtLeast(LOW)")
	}
}

func TestLiteralRule(t *testing.T) {
	rule := LiteralRule{Term: "best efforts"}
	if !rule.Matches("shall use best efforts to deliver") {
		t.Error("expected literal match")
	}
	if rule.Matches("shall use commercially reasonable efforts") {
		t.Error("unexpected literal match")
	}
}

func TestPatternRule(t *testing.T) {
	rule := NewPatternRule(`unlimited liability|any and all damages`)
	if !rule.Matches("party accepts unlimited liability hereunder") {
		t.Error("expected pattern match")
	}
	if !rule.Matches("liable for any and all damages") {
		t.Error("expected alternation match")
	}
	if rule.Matches("liability is capped at the fees paid") {
		t.Error("unexpected pattern match")
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("Best EFFORTS") != "best efforts" {
		t.Error("Normalize should lowercase")
	}
}
