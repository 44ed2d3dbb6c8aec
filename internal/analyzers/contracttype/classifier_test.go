// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contracttype

import (
	"testing"

	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

func classify(text string) string {
	return NewClassifier().Classify(detector.Normalize(text))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"employment", "The Employee shall receive a salary of $90,000.", "Employment Agreement"},
		{"service", "Contractor shall complete each deliverable per the statement of work.", "Service Agreement"},
		{"nda", "Recipient shall keep all proprietary information confidential.", "Non-Disclosure Agreement"},
		{"license", "Licensor grants Licensee a non-exclusive license subject to royalty payments.", "License Agreement"},
		{"purchase", "Buyer agrees to purchase the goods from Seller.", "Purchase Agreement"},
		{"fallback", "The parties shall cooperate in good faith.", catalog.GeneralContract},
		{"empty", "", catalog.GeneralContract},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.text); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestFirstMatchWins(t *testing.T) {
	// Employment keywords outrank NDA keywords regardless of position in text.
	text := "All confidential information learned during employment remains the employer's property."
	if got := classify(text); got != "Employment Agreement" {
		t.Errorf("Classify = %q, want Employment Agreement", got)
	}
}

func TestCaseInsensitive(t *testing.T) {
	if got := classify("EMPLOYEE BENEFITS ARE LISTED IN SCHEDULE A"); got != "Employment Agreement" {
		t.Errorf("Classify = %q, want Employment Agreement", got)
	}
}
