// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about a check
type CheckInfo struct {
	Name                string   // Name of the check (e.g., "AMBIGUITY")
	ShortDescription    string   // Short description for the checks list
	DetailedDescription string   // Detailed description of what the check does
	Patterns            []string // Patterns the check looks for
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"subtitle": color.New(color.FgCyan, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowChecksList displays the one-line summary of every registered check
func (h *System) ShowChecksList() {
	h.colors["title"].Println("Available checks:")
	fmt.Println()

	var names []string
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetCheckInfo()
		fmt.Fprintf(w, "  %s\t%s\n", info.Name, info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Use -explain <check> for details about a specific check.")
}

// ShowCheckHelp displays detailed help for one check. Returns false when the
// check is unknown.
func (h *System) ShowCheckHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(name)]
	if !exists {
		return false
	}
	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s - %s\n\n", info.Name, info.ShortDescription)
	fmt.Println(info.DetailedDescription)

	if len(info.Patterns) > 0 {
		fmt.Println()
		h.colors["header"].Println("Patterns:")
		for _, pattern := range info.Patterns {
			h.colors["item"].Printf("  - %s\n", pattern)
		}
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("Examples:")
		for _, example := range info.Examples {
			h.colors["example"].Printf("  %s\n", example)
		}
	}

	return true
}
