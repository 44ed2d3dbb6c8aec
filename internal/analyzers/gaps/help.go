// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package gaps

import (
	"fmt"
	"strings"

	"clause-scan/internal/help"
)

// GetCheckInfo returns standardized information about this check
func (d *Detector) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{}

	info.Name = "GAPS"
	info.ShortDescription = "Flags missing standard protective clauses"
	info.DetailedDescription = `This check looks for the absence of standard protections every well-drafted
contract should carry. A protection counts as present when any of its trigger
keywords appears in the clause text; otherwise a missing-protection entry is
added, in check order, up to a fixed maximum per report.`

	for _, group := range d.groups {
		info.Patterns = append(info.Patterns,
			fmt.Sprintf("%s (keywords: %s)", group.Element, strings.Join(group.Keywords, ", ")))
	}

	info.Examples = []string{
		`clause-scan -text "Either party may terminate with 30 days notice." -checks GAPS`,
	}

	return info
}
