// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package risk

import (
	"fmt"

	"clause-scan/internal/help"
)

// GetCheckInfo returns standardized information about this check
func (a *Analyzer) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{}

	info.Name = "RISK"
	info.ShortDescription = "Detects high-risk clause patterns that create outsized legal exposure"
	info.DetailedDescription = `This check tests the clause against a catalog of regex signatures correlated
with dangerous contract language: unlimited liability, irrevocable
assignments, perpetual terms, offshore jurisdictions, class action waivers,
and audit rights waivers. Each signature carries a risk weight from 2 to 4;
a weight of 4 maps to a CRITICAL finding.`

	for _, entry := range a.patterns {
		info.Patterns = append(info.Patterns,
			fmt.Sprintf("%s (risk weight %d)", entry.Name, entry.Weight))
	}

	info.Examples = []string{
		`clause-scan -text "Vendor accepts unlimited liability for any and all damages." -checks RISK`,
		`clause-scan -file contract.pdf -checks RISK -format json`,
	}

	return info
}
