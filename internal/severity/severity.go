// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package severity combines per-finding risk weights into one overall
// clause-level classification.
package severity

import "clause-scan/internal/detector"

// Aggregate classifies the overall severity of a clause from the risk
// weights of its findings. With no findings the clause is LOW. Otherwise
// the max and mean of the weights are tested against ordered threshold
// rules, top-down, first match wins:
//
//	maxRisk >= 4 or avgRisk >= 3.0  -> CRITICAL
//	maxRisk >= 3 or avgRisk >= 2.5  -> HIGH
//	maxRisk >= 2 or avgRisk >= 1.5  -> MEDIUM
//	otherwise                       -> LOW
func Aggregate(weights []int) detector.RiskLevel {
	if len(weights) == 0 {
		return detector.RiskLow
	}

	maxRisk := weights[0]
	sum := 0
	for _, w := range weights {
		if w > maxRisk {
			maxRisk = w
		}
		sum += w
	}
	avgRisk := float64(sum) / float64(len(weights))

	switch {
	case maxRisk >= 4 || avgRisk >= 3.0:
		return detector.RiskCritical
	case maxRisk >= 3 || avgRisk >= 2.5:
		return detector.RiskHigh
	case maxRisk >= 2 || avgRisk >= 1.5:
		return detector.RiskMedium
	default:
		return detector.RiskLow
	}
}

// AggregateFindings is a convenience wrapper over Aggregate for a finding list.
func AggregateFindings(findings []detector.Finding) detector.RiskLevel {
	weights := make([]int, 0, len(findings))
	for _, f := range findings {
		weights = append(weights, f.Weight)
	}
	return Aggregate(weights)
}
