// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package severity

import (
	"testing"

	"clause-scan/internal/detector"
)

func TestAggregateThresholds(t *testing.T) {
	cases := []struct {
		name    string
		weights []int
		want    detector.RiskLevel
	}{
		{"empty", nil, detector.RiskLow},
		{"single low", []int{1}, detector.RiskLow},
		{"all ones", []int{1, 1, 1}, detector.RiskLow},
		{"single medium", []int{2}, detector.RiskMedium},
		{"avg reaches medium", []int{1, 2}, detector.RiskMedium},
		{"single high", []int{3}, detector.RiskHigh},
		{"avg reaches high", []int{2, 3}, detector.RiskHigh},
		{"single critical", []int{4}, detector.RiskCritical},
		{"avg reaches critical", []int{3, 3, 3}, detector.RiskCritical},
		{"critical outweighs lows", []int{1, 1, 4}, detector.RiskCritical},
		{"high with low mean", []int{1, 1, 3}, detector.RiskHigh},
		{"zero weights", []int{0, 0}, detector.RiskLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Aggregate(tc.weights); got != tc.want {
				t.Errorf("Aggregate(%v) = %s, want %s", tc.weights, got, tc.want)
			}
		})
	}
}

// Raising any single weight must never lower the overall classification.
func TestAggregateMonotonic(t *testing.T) {
	for a := 0; a <= 4; a++ {
		for b := 0; b <= 4; b++ {
			for c := 0; c <= 4; c++ {
				base := Aggregate([]int{a, b, c})
				for bump := a + 1; bump <= 4; bump++ {
					raised := Aggregate([]int{bump, b, c})
					if raised.Rank() < base.Rank() {
						t.Fatalf("Aggregate([%d %d %d]) = %s but Aggregate([%d %d %d]) = %s",
							a, b, c, base, bump, b, c, raised)
					}
				}
			}
		}
	}
}

// Adding a finding at or above the current classification must never lower it.
func TestAggregateGrowsWithFindings(t *testing.T) {
	weights := []int{2, 1}
	base := Aggregate(weights)
	extended := Aggregate(append(weights, 4))
	if extended.Rank() < base.Rank() {
		t.Errorf("adding a weight-4 finding lowered severity from %s to %s", base, extended)
	}
}

func TestAggregateFindings(t *testing.T) {
	findings := []detector.Finding{
		{Issue: "a", Weight: 1},
		{Issue: "b", Weight: 4},
	}
	if got := AggregateFindings(findings); got != detector.RiskCritical {
		t.Errorf("AggregateFindings = %s, want CRITICAL", got)
	}
	if got := AggregateFindings(nil); got != detector.RiskLow {
		t.Errorf("AggregateFindings(nil) = %s, want LOW", got)
	}
}
