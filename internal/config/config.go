// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Checks  string `yaml:"checks"`
		Verbose bool   `yaml:"verbose"`
		NoColor bool   `yaml:"no_color"`
		Quiet   bool   `yaml:"quiet"`
	} `yaml:"defaults"`

	// Web server settings
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Format      string `yaml:"format"`
	Checks      string `yaml:"checks"`
	Verbose     bool   `yaml:"verbose"`
	NoColor     bool   `yaml:"no_color"`
	Quiet       bool   `yaml:"quiet"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{Profiles: make(map[string]Profile)}
	config.Defaults.Format = "text"
	config.Defaults.Checks = "all"
	config.Server.Port = "8080"

	// Default CI profile: machine-readable output, no terminal decoration
	config.Profiles["ci"] = Profile{
		Format:      "json",
		Checks:      "all",
		NoColor:     true,
		Quiet:       true,
		Description: "Optimized for CI pipelines with JSON output and no colors",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults the file left unset
	if config.Defaults.Format == "" {
		config.Defaults.Format = "text"
	}
	if config.Defaults.Checks == "" {
		config.Defaults.Checks = "all"
	}
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	return config, nil
}

// LoadConfigOrDefault loads the given config file, falling back to defaults
// with a warning when loading fails.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	candidates := []string{
		"config.yaml",
		"clause-scan.yaml",
		"clause-scan.yml",
		".clause-scan.yaml",
		".clause-scan.yml",
	}
	for _, name := range candidates {
		if fileExists(name) {
			return name
		}
	}

	// Fall back to the user config directory
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".clause-scan", "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the names of all defined profiles
func (c *Config) ListProfiles() []string {
	var names []string
	for name := range c.Profiles {
		names = append(names, name)
	}
	return names
}

// GetProfile returns the named profile, or nil if it does not exist
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}
