// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contracttype

import (
	"clause-scan/internal/catalog"
	"clause-scan/internal/detector"
)

// Classifier infers a contract-type label from keyword presence.
type Classifier struct {
	categories []catalog.ContractCategory
}

// NewClassifier creates a Classifier backed by the static category table.
func NewClassifier() *Classifier {
	return &Classifier{categories: catalog.ContractCategories()}
}

func (c *Classifier) Name() string {
	return "CONTRACT_TYPE"
}

// Classify returns the label of the first category with any keyword present
// in the normalized text. Category order matters: the table is a priority
// list and the first match wins. Always returns a label.
func (c *Classifier) Classify(normalized string) string {
	for _, category := range c.categories {
		for _, keyword := range category.Keywords {
			if (detector.LiteralRule{Term: keyword}).Matches(normalized) {
				return category.Label
			}
		}
	}
	return catalog.GeneralContract
}
