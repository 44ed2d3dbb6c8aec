// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ambiguity

import (
	"fmt"

	"clause-scan/internal/help"
)

// GetCheckInfo returns standardized information about this check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{}

	info.Name = "AMBIGUITY"
	info.ShortDescription = "Detects ambiguous legal terms with contestable meanings"
	info.DetailedDescription = `This check scans clause text for words and phrases whose legal meaning is
subjective or contestable, such as "reasonable" or "best efforts". Each term
carries a risk weight reflecting how often it produces disputes, along with a
plain-English explanation and a drafting recommendation.

Matching is case-insensitive literal substring matching: a term that appears
anywhere in the clause fires once, regardless of how many times it repeats.`

	for _, entry := range a.terms {
		info.Patterns = append(info.Patterns,
			fmt.Sprintf("%q (risk weight %d)", entry.Term, entry.Weight))
	}

	info.Examples = []string{
		`clause-scan -text "The Party shall use reasonable efforts." -checks AMBIGUITY`,
		`clause-scan -text "Contractor will act in a professional manner." -checks AMBIGUITY -format json`,
	}

	return info
}
