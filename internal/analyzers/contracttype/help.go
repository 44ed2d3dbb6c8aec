// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contracttype

import (
	"fmt"
	"strings"

	"clause-scan/internal/help"
)

// GetCheckInfo returns standardized information about this check
func (c *Classifier) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{}

	info.Name = "CONTRACT_TYPE"
	info.ShortDescription = "Infers the contract type from keyword presence"
	info.DetailedDescription = `This check labels the clause with an inferred agreement category. Categories
are tested in a fixed priority order and the first category with any keyword
present wins; clauses matching no category are labeled "General Contract".`

	for _, category := range c.categories {
		info.Patterns = append(info.Patterns,
			fmt.Sprintf("%s (keywords: %s)", category.Label, strings.Join(category.Keywords, ", ")))
	}

	info.Examples = []string{
		`clause-scan -text "Employee shall receive an annual salary and benefits." -checks CONTRACT_TYPE`,
	}

	return info
}
