// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gaps

import (
	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

// Detector checks clause text for the absence of standard protective
// clauses (governing law, dispute resolution, amendment procedure,
// integration clause, severability).
type Detector struct {
	groups []catalog.ProtectionGroup
	limit  int
}

// NewDetector creates a Detector backed by the static protection table.
func NewDetector() *Detector {
	return &Detector{
		groups: catalog.RequiredProtections(),
		limit:  catalog.MaxMissingProtections,
	}
}

func (d *Detector) Name() string {
	return "GAPS"
}

// Detect returns one MissingProtection per protection group with no keyword
// present in the normalized text. Check order is priority order; output is
// truncated to the configured limit.
func (d *Detector) Detect(normalized string) []detector.MissingProtection {
	var missing []detector.MissingProtection
	for _, group := range d.groups {
		if len(missing) >= d.limit {
			break
		}
		present := false
		for _, keyword := range group.Keywords {
			if (detector.LiteralRule{Term: keyword}).Matches(normalized) {
				present = true
				break
			}
		}
		if present {
			continue
		}
		missing = append(missing, detector.MissingProtection{
			Element:        group.Element,
			Description:    group.Description,
			PlainEnglish:   group.PlainEnglish,
			Recommendation: group.Recommendation,
		})
	}
	return missing
}
