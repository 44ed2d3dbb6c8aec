// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"clause-scan/internal/analyzers/ambiguity"
	"clause-scan/internal/analyzers/contracttype"
	"clause-scan/internal/analyzers/gaps"
	"clause-scan/internal/analyzers/risk"
	"clause-scan/internal/config"
	"clause-scan/internal/detector"
	"clause-scan/internal/engine"
	"clause-scan/internal/formatters"
	"clause-scan/internal/help"
	"clause-scan/internal/preprocessors"
	"clause-scan/internal/version"
	"clause-scan/internal/web"

	_ "clause-scan/internal/formatters/json"
	_ "clause-scan/internal/formatters/text"
	_ "clause-scan/internal/formatters/yaml"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// configFlags holds command line flag values
type configFlags struct {
	outputFormat string
	checksToRun  string
	verbose      bool
	noColor      bool
	quiet        bool
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format  string
	checks  string
	verbose bool
	noColor bool
	quiet   bool
}

// resolveConfiguration resolves final values from config file, profile, and
// command line flags, in that precedence order. Flags only override when
// they were explicitly set.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Checks to run
	final.checks = "all" // default fallback
	if cfg != nil && cfg.Defaults.Checks != "" {
		final.checks = cfg.Defaults.Checks
	}
	if activeProfile != nil && activeProfile.Checks != "" {
		final.checks = activeProfile.Checks
	}
	if isFlagSet("checks") && flags.checksToRun != "" {
		final.checks = flags.checksToRun
	}

	// Verbose
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// No color
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Quiet
	if cfg != nil {
		final.quiet = cfg.Defaults.Quiet
	}
	if activeProfile != nil {
		final.quiet = activeProfile.Quiet
	}
	if isFlagSet("quiet") {
		final.quiet = flags.quiet
	}

	return final
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// isTerminal reports whether the file is attached to a terminal
func isTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}

// newHelpSystem registers every check's help provider
func newHelpSystem(noColor bool) *help.System {
	helpSystem := help.NewSystem(noColor)
	helpSystem.RegisterProvider(ambiguity.NewAnalyzer())
	helpSystem.RegisterProvider(risk.NewAnalyzer())
	helpSystem.RegisterProvider(gaps.NewDetector())
	helpSystem.RegisterProvider(contracttype.NewClassifier())
	return helpSystem
}

func main() {
	// Load .env before anything reads the environment; a missing file is fine.
	_ = godotenv.Load()

	clauseText := flag.String("text", "", "Clause text to analyze")
	inputFile := flag.String("file", "", "Path to a file containing the clause (.txt, .md, or .pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, yaml (default: text)")
	checksToRun := flag.String("checks", "", "Specific checks to run: AMBIGUITY, RISK, GAPS, CONTRACT_TYPE, or combinations like 'AMBIGUITY,RISK'")
	verbose := flag.Bool("verbose", false, "Display plain-English detail for each finding")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress progress output (useful for scripts and CI/CD)")
	showVersion := flag.Bool("version", false, "Show version information")
	listChecks := flag.Bool("list-checks", false, "List available checks")
	explainCheck := flag.String("explain", "", "Show detailed help for a specific check")
	failOnHigh := flag.Bool("fail-on-high", false, "Exit with code 2 when overall severity is HIGH or CRITICAL")

	// Web server flags
	webMode := flag.Bool("web", false, "Start web server mode instead of CLI analysis")
	webPort := flag.String("port", "", "Port for web server (default: 8080)")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Auto-detect non-interactive environment
	if !isTerminal(os.Stderr) || *quiet || os.Getenv("CI") != "" {
		*noColor = true
	}

	if *listChecks {
		newHelpSystem(*noColor).ShowChecksList()
		return
	}
	if *explainCheck != "" {
		if !newHelpSystem(*noColor).ShowCheckHelp(*explainCheck) {
			fmt.Fprintf(os.Stderr, "Error: unknown check %q (use -list-checks)\n", *explainCheck)
			os.Exit(1)
		}
		return
	}

	// Load configuration
	cfg := config.LoadConfigOrDefault(*configFile)

	if *listProfiles {
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles defined")
			return
		}
		fmt.Println("Available profiles:")
		for _, name := range names {
			profile := cfg.GetProfile(name)
			fmt.Printf("  %s - %s\n", name, profile.Description)
		}
		return
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: profile %q not found in config (use -list-profiles)\n", *profileName)
			os.Exit(1)
		}
	}

	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		outputFormat: *outputFormat,
		checksToRun:  *checksToRun,
		verbose:      *verbose,
		noColor:      *noColor,
		quiet:        *quiet,
	})
	if !isTerminal(os.Stderr) || finalConfig.quiet || os.Getenv("CI") != "" {
		finalConfig.noColor = true
	}

	// Web mode runs the server and never returns on success
	if *webMode {
		port := *webPort
		if port == "" {
			port = cfg.Server.Port
		}
		server := web.NewWebServer(port)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Obtain the clause text
	clause, err := resolveClauseText(*clauseText, *inputFile, finalConfig.quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	checks := engine.ParseChecksToRun(strings.Split(finalConfig.checks, ","))
	rep := engine.AnalyzeWithOptions(clause, engine.Options{Checks: checks})

	output, err := formatters.Export(finalConfig.format, rep, formatters.FormatterOptions{
		Verbose: finalConfig.verbose,
		NoColor: finalConfig.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		if !finalConfig.quiet {
			fmt.Printf("Results written to %s\n", *outputFile)
		}
	} else {
		fmt.Print(output)
		if output != "" && !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}

	if *failOnHigh && rep.Summary != nil && rep.Summary.OverallSeverity.AtLeast(detector.RiskHigh) {
		os.Exit(2)
	}
}

// resolveClauseText picks the clause source: -text wins, then -file.
func resolveClauseText(text, file string, quiet bool) (string, error) {
	switch {
	case text != "" && file != "":
		return "", fmt.Errorf("use either -text or -file, not both")
	case text != "":
		return text, nil
	case file != "":
		if !preprocessors.CanProcess(file) {
			return "", fmt.Errorf("unsupported input file: %s", file)
		}
		if !quiet {
			fmt.Fprintf(os.Stderr, "Reading clause text from %s\n", file)
		}
		return preprocessors.ReadClauseText(file)
	default:
		return "", fmt.Errorf("no clause provided: use -text, -file, or -web (see -help)")
	}
}
