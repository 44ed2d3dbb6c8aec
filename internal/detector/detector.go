// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"regexp"
	"strings"
)

// RiskLevel classifies how dangerous a finding or clause is.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"

	// RiskUnknown is only ever emitted on the failure-report path.
	RiskUnknown RiskLevel = "UNKNOWN"
)

// riskLevelTable maps a pattern weight (0-4) to a display level.
var riskLevelTable = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// RiskLevelForWeight converts a catalog risk weight into a RiskLevel.
// Weights above 3 saturate at CRITICAL.
func RiskLevelForWeight(weight int) RiskLevel {
	if weight < 0 {
		weight = 0
	}
	if weight > 3 {
		weight = 3
	}
	return riskLevelTable[weight]
}

// Rank returns the ordinal position of the level, LOW=0 through CRITICAL=3.
// UNKNOWN ranks below LOW so it never satisfies an AtLeast check.
func (r RiskLevel) Rank() int {
	for i, level := range riskLevelTable {
		if level == r {
			return i
		}
	}
	return -1
}

// AtLeast reports whether r is at or above the given level.
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.Rank() >= 0 && r.Rank() >= other.Rank()
}

// MatchRule is the predicate half of a catalog entry. Implementations
// receive clause text that has already been lowercased.
type MatchRule interface {
	Matches(normalized string) bool
}

// LiteralRule matches a literal substring.
type LiteralRule struct {
	Term string
}

func (r LiteralRule) Matches(normalized string) bool {
	return strings.Contains(normalized, r.Term)
}

// PatternRule matches a pre-compiled regular expression.
type PatternRule struct {
	regex *regexp.Regexp
}

// NewPatternRule compiles expr at construction time. Catalog expressions are
// static, so a compile failure is a programming error and panics.
func NewPatternRule(expr string) PatternRule {
	return PatternRule{regex: regexp.MustCompile(expr)}
}

func (r PatternRule) Matches(normalized string) bool {
	return r.regex.MatchString(normalized)
}

// Expr returns the source expression of the rule.
func (r PatternRule) Expr() string {
	return r.regex.String()
}

// Finding represents one detected issue in a clause. The exported fields are
// the report shape; Weight and Category are carried internally for severity
// aggregation and bucketing.
type Finding struct {
	Issue          string    `json:"issue" yaml:"issue"`
	Description    string    `json:"description" yaml:"description"`
	PlainEnglish   string    `json:"plainEnglish" yaml:"plainEnglish"`
	Recommendation string    `json:"recommendation" yaml:"recommendation"`
	RiskLevel      RiskLevel `json:"riskLevel" yaml:"riskLevel"`

	Weight   int    `json:"-" yaml:"-"`
	Category string `json:"-" yaml:"-"`
}

// Finding categories.
const (
	CategoryAmbiguity = "ambiguity"
	CategoryRisk      = "risk"
)

// MissingProtection represents a standard protective clause that is absent
// from the analyzed text.
type MissingProtection struct {
	Element        string `json:"element" yaml:"element"`
	Description    string `json:"description" yaml:"description"`
	PlainEnglish   string `json:"plainEnglish" yaml:"plainEnglish"`
	Recommendation string `json:"recommendation" yaml:"recommendation"`
}

// Analyzer is implemented by each clause analyzer. Analyze receives the
// normalized (lowercased) clause text and returns zero or more findings.
// Analyzers are pure: no shared mutable state, safe for concurrent use.
type Analyzer interface {
	Name() string
	Analyze(normalized string) []Finding
}

// Normalize converts raw clause text into the case-insensitive comparison
// form used by every analyzer.
func Normalize(clause string) string {
	return strings.ToLower(clause)
}
