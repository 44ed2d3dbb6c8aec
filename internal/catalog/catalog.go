// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the static pattern tables the analyzers run against.
// Everything here is initialized once at process start and never mutated;
// accessors hand out the package-level slices directly and callers must
// treat them as read-only.
package catalog

import "clause-scan/internal/detector"

// TermEntry describes an ambiguous legal term matched by literal substring.
type TermEntry struct {
	Term           string
	Weight         int // 0-4
	Description    string
	PlainEnglish   string
	Recommendation string
}

// PatternEntry describes a high-risk clause signature matched by regex.
// Name is the human-readable label used in finding titles.
type PatternEntry struct {
	Name           string
	Rule           detector.PatternRule
	Weight         int // 0-4
	Description    string
	PlainEnglish   string
	Recommendation string
}

// ProtectionGroup describes a standard protective clause. The group counts
// as present when any keyword appears in the text.
type ProtectionGroup struct {
	Element        string
	Keywords       []string
	Description    string
	PlainEnglish   string
	Recommendation string
}

// ContractCategory maps keyword presence to a contract-type label.
type ContractCategory struct {
	Label    string
	Keywords []string
}

// ReferenceRule adds a legal reference when any keyword is present.
type ReferenceRule struct {
	Reference string
	Keywords  []string
}

var ambiguousTerms = []TermEntry{
	{
		Term:           "reasonable",
		Weight:         2,
		Description:    "Subjective standard that may lead to disputes",
		PlainEnglish:   `The word "reasonable" means different things to different people`,
		Recommendation: `Define specific criteria, timeframes, or benchmarks for what constitutes "reasonable"`,
	},
	{
		Term:           "material",
		Weight:         2,
		Description:    "Undefined materiality threshold creates interpretation risk",
		PlainEnglish:   `What counts as "material" should be clearly defined with numbers or examples`,
		Recommendation: "Specify dollar amounts, percentages, or concrete examples of materiality",
	},
	{
		Term:           "best efforts",
		Weight:         3,
		Description:    "Highest standard of performance with unclear boundaries",
		PlainEnglish:   `"Best efforts" could mean unlimited obligation - very risky for you`,
		Recommendation: `Replace with "commercially reasonable efforts" with defined performance metrics`,
	},
	{
		Term:           "best endeavors",
		Weight:         3,
		Description:    "Highest standard of performance with unclear boundaries",
		PlainEnglish:   `"Best endeavors" could mean unlimited obligation - very risky for you`,
		Recommendation: `Replace with "commercially reasonable efforts" with defined performance metrics`,
	},
	{
		Term:           "timely",
		Weight:         2,
		Description:    "Vague timeframe creates potential scheduling disputes",
		PlainEnglish:   `Always use specific dates instead of vague terms like "timely"`,
		Recommendation: "Specify exact deadlines, timeframes, and delivery dates",
	},
	{
		Term:           "professional manner",
		Weight:         1,
		Description:    "Subjective performance standard without clear definition",
		PlainEnglish:   `Describe exactly what "professional" means in this specific context`,
		Recommendation: "Define specific quality standards or industry benchmarks for professional performance",
	},
}

var highRiskPatterns = []PatternEntry{
	{
		Name:           "Unlimited liability exposure",
		Rule:           detector.NewPatternRule(`unlimited liability|any and all damages|no limitation.*liability|liable.*all.*damages`),
		Weight:         4,
		Description:    "Exposes party to potentially catastrophic financial risk",
		PlainEnglish:   "This could bankrupt you - always limit your liability exposure",
		Recommendation: "Add liability caps and exclude consequential damages",
	},
	{
		Name:           "Irrevocable assignment",
		Rule:           detector.NewPatternRule(`irrevocably.*assign|irrevocable.*assignment`),
		Weight:         3,
		Description:    "Permanent transfer of rights with no recourse or reversal option",
		PlainEnglish:   "Once you sign this, you can never get these rights back",
		Recommendation: "Add termination conditions and scope limitations to assignments",
	},
	{
		Name:           "Unlimited duration",
		Rule:           detector.NewPatternRule(`perpetuity|throughout.*universe|forever`),
		Weight:         3,
		Description:    "Unlimited time duration may be legally unenforceable",
		PlainEnglish:   "Forever is too long - courts may not enforce overly broad terms",
		Recommendation: "Limit scope to reasonable time periods and geographic areas",
	},
	{
		Name:           "Offshore jurisdiction",
		Rule:           detector.NewPatternRule(`cayman.*law|cayman islands`),
		Weight:         3,
		Description:    "Offshore jurisdiction may limit legal protections and enforcement",
		PlainEnglish:   "Resolving disputes offshore may be difficult, expensive, and risky",
		Recommendation: "Consider requiring disputes be resolved in more favorable jurisdiction",
	},
	{
		Name:           "Class action waiver",
		Rule:           detector.NewPatternRule(`class action.*waiver|waiving.*class action`),
		Weight:         2,
		Description:    "Prevents joining group lawsuits against the other party",
		PlainEnglish:   "You cannot join with others to sue - this may limit your legal options",
		Recommendation: "Verify enforceability under applicable state and federal law",
	},
	{
		Name:           "Audit rights waiver",
		Rule:           detector.NewPatternRule(`waiver.*audit|waiving.*audit`),
		Weight:         3,
		Description:    "Eliminates oversight and verification rights",
		PlainEnglish:   "You are giving up the right to check if they are following the rules",
		Recommendation: "Preserve essential audit and oversight rights",
	},
}

var requiredProtections = []ProtectionGroup{
	{
		Element:        "Governing law clause",
		Keywords:       []string{"governing law", "applicable law"},
		Description:    "No governing law is specified for interpreting the contract",
		PlainEnglish:   "Without a governing law clause, it is unclear which state's or country's rules apply",
		Recommendation: "Add a governing law clause naming the jurisdiction whose law controls",
	},
	{
		Element:        "Dispute resolution mechanism",
		Keywords:       []string{"dispute", "arbitration", "litigation"},
		Description:    "No mechanism is specified for resolving disagreements",
		PlainEnglish:   "If something goes wrong, there is no agreed way to settle it",
		Recommendation: "Specify arbitration, mediation, or court venue for disputes",
	},
	{
		Element:        "Contract amendment procedures",
		Keywords:       []string{"amendment", "modification"},
		Description:    "No procedure is defined for changing the contract terms",
		PlainEnglish:   "The contract does not say how future changes must be agreed",
		Recommendation: "Require amendments to be in writing and signed by both parties",
	},
	{
		Element:        "Integration/entire agreement clause",
		Keywords:       []string{"entire agreement", "integration"},
		Description:    "Prior discussions and side agreements are not excluded",
		PlainEnglish:   "Earlier emails or promises could be argued to be part of the deal",
		Recommendation: "Add an entire agreement clause superseding prior understandings",
	},
	{
		Element:        "Severability clause",
		Keywords:       []string{"severability", "severable"},
		Description:    "An unenforceable term could invalidate the whole contract",
		PlainEnglish:   "If a court strikes one term, the rest of the contract should survive",
		Recommendation: "Add a severability clause preserving the remaining terms",
	},
}

var contractCategories = []ContractCategory{
	{Label: "Employment Agreement", Keywords: []string{"employment", "employee", "employer", "salary", "benefits"}},
	{Label: "Service Agreement", Keywords: []string{"service", "contractor", "deliverable", "statement of work"}},
	{Label: "Non-Disclosure Agreement", Keywords: []string{"confidential", "non-disclosure", "proprietary"}},
	{Label: "License Agreement", Keywords: []string{"license", "licensor", "licensee", "royalty"}},
	{Label: "Purchase Agreement", Keywords: []string{"purchase", "buyer", "seller", "goods"}},
}

// GeneralContract is the classifier's fallback label.
const GeneralContract = "General Contract"

var baseReferences = []string{
	"Restatement (Second) of Contracts",
	"Uniform Commercial Code (UCC)",
}

var referenceRules = []ReferenceRule{
	{Reference: "Federal Arbitration Act", Keywords: []string{"arbitration", "arbitrator"}},
	{Reference: "Bloor Italian Gifts Ltd. v. Dixon (reasonable vs. best efforts)", Keywords: []string{"best efforts", "best endeavors"}},
	{Reference: "Restatement (Second) of Contracts § 356", Keywords: []string{"liquidated damages"}},
	{Reference: "AT&T Mobility LLC v. Concepcion (2011)", Keywords: []string{"class action"}},
	{Reference: "Uniform Commercial Code provisions on consequential damages", Keywords: []string{"liability", "damages"}},
}

// MaxMissingProtections caps how many missing-protection entries one report
// carries; the check order of requiredProtections is the priority order.
const MaxMissingProtections = 4

// MaxLegalReferences caps the legalReferences list in one report.
const MaxLegalReferences = 5

// AmbiguousTerms returns the ambiguous-term table.
func AmbiguousTerms() []TermEntry { return ambiguousTerms }

// HighRiskPatterns returns the high-risk regex table.
func HighRiskPatterns() []PatternEntry { return highRiskPatterns }

// RequiredProtections returns the protective-clause groups in check order.
func RequiredProtections() []ProtectionGroup { return requiredProtections }

// ContractCategories returns the contract-type categories in priority order.
func ContractCategories() []ContractCategory { return contractCategories }

// BaseReferences returns the legal references included in every report.
func BaseReferences() []string { return baseReferences }

// ReferenceRules returns the keyword-triggered reference rules.
func ReferenceRules() []ReferenceRule { return referenceRules }
