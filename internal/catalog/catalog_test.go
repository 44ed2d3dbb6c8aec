// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"strings"
	"testing"
)

func TestAmbiguousTermsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range AmbiguousTerms() {
		if entry.Term == "" {
			t.Error("empty ambiguous term")
		}
		if entry.Term != strings.ToLower(entry.Term) {
			t.Errorf("term %q must be lowercase to match normalized text", entry.Term)
		}
		if entry.Weight < 0 || entry.Weight > 4 {
			t.Errorf("term %q weight %d out of range [0,4]", entry.Term, entry.Weight)
		}
		if entry.Description == "" || entry.PlainEnglish == "" || entry.Recommendation == "" {
			t.Errorf("term %q missing boilerplate text", entry.Term)
		}
		if seen[entry.Term] {
			t.Errorf("duplicate ambiguous term %q", entry.Term)
		}
		seen[entry.Term] = true
	}
}

func TestHighRiskPatternsWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, entry := range HighRiskPatterns() {
		if entry.Name == "" {
			t.Error("high-risk pattern without a name")
		}
		if entry.Weight < 0 || entry.Weight > 4 {
			t.Errorf("pattern %q weight %d out of range [0,4]", entry.Name, entry.Weight)
		}
		if entry.Description == "" || entry.PlainEnglish == "" || entry.Recommendation == "" {
			t.Errorf("pattern %q missing boilerplate text", entry.Name)
		}
		if seen[entry.Name] {
			t.Errorf("duplicate pattern name %q", entry.Name)
		}
		seen[entry.Name] = true
	}
}

func TestPatternAndTermKeysDisjoint(t *testing.T) {
	terms := make(map[string]bool)
	for _, entry := range AmbiguousTerms() {
		terms[entry.Term] = true
	}
	for _, entry := range HighRiskPatterns() {
		if terms[entry.Name] {
			t.Errorf("pattern name %q collides with an ambiguous term", entry.Name)
		}
	}
}

func TestUnlimitedLiabilityIsCritical(t *testing.T) {
	for _, entry := range HighRiskPatterns() {
		if entry.Name == "Unlimited liability exposure" {
			if entry.Weight != 4 {
				t.Errorf("unlimited liability weight = %d, want 4", entry.Weight)
			}
			return
		}
	}
	t.Error("unlimited liability pattern missing from catalog")
}

func TestRequiredProtectionsOrder(t *testing.T) {
	want := []string{
		"Governing law clause",
		"Dispute resolution mechanism",
		"Contract amendment procedures",
		"Integration/entire agreement clause",
		"Severability clause",
	}
	got := RequiredProtections()
	if len(got) != len(want) {
		t.Fatalf("expected %d protection groups, got %d", len(want), len(got))
	}
	for i, group := range got {
		if group.Element != want[i] {
			t.Errorf("protection[%d] = %q, want %q", i, group.Element, want[i])
		}
		if len(group.Keywords) == 0 {
			t.Errorf("protection %q has no keywords", group.Element)
		}
	}
}

func TestContractCategoriesOrder(t *testing.T) {
	want := []string{
		"Employment Agreement",
		"Service Agreement",
		"Non-Disclosure Agreement",
		"License Agreement",
		"Purchase Agreement",
	}
	got := ContractCategories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i, category := range got {
		if category.Label != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, category.Label, want[i])
		}
	}
}

func TestBaseReferences(t *testing.T) {
	refs := BaseReferences()
	if len(refs) != 2 {
		t.Fatalf("expected 2 base references, got %d", len(refs))
	}
	if refs[0] != "Restatement (Second) of Contracts" {
		t.Errorf("unexpected first base reference %q", refs[0])
	}
}
