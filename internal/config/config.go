package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

// DefaultAdditionalPropToken is the path substring the containment comparison
// filters out when additional-properties placeholders are ignored. OpenAPI
// example payloads name their placeholder slots additionalProp1,
// additionalProp2 and so on.
const DefaultAdditionalPropToken = "additionalProp"

// Config represents the complete configuration for jsonshape
type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Dates   DatesConfig   `yaml:"dates"`
	Compare CompareConfig `yaml:"compare"`
}

// KeysConfig controls how object keys are canonicalized before they become
// path segments.
type KeysConfig struct {
	// FoldToSnakeCase folds every key to snake_case so documents from
	// differently-cased producers ("userId" vs "user_id") compare equal.
	FoldToSnakeCase bool `yaml:"fold_to_snake_case"`
	// Mappings renames individual keys before path construction.
	Mappings map[string]string `yaml:"mappings"`
}

// DatesConfig controls the date refinement of string values
type DatesConfig struct {
	// Enabled toggles date detection; when false every string is tagged
	// as a plain string.
	Enabled bool `yaml:"enabled"`
	// ExtraPatterns adds regex patterns recognized as dates on top of the
	// built-in RFC3339/ISO8601 set.
	ExtraPatterns []DatePattern `yaml:"extra_patterns"`
}

// DatePattern is a regex pattern for an additional date format
type DatePattern struct {
	Pattern string `yaml:"pattern"`
	Comment string `yaml:"comment,omitempty"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// CompareConfig controls comparison behavior
type CompareConfig struct {
	// IgnoreAdditionalProps always filters additional-properties placeholder
	// paths in containment comparisons, regardless of the per-call flag.
	IgnoreAdditionalProps bool `yaml:"ignore_additional_props"`
	// AdditionalPropToken overrides the placeholder path substring.
	AdditionalPropToken string `yaml:"additional_prop_token"`
	// IgnorePaths drops signatures whose path matches any of these patterns
	// from both sides before reconciliation.
	IgnorePaths []IgnorePattern `yaml:"ignore_paths"`
}

// IgnorePattern is a regex pattern for paths excluded from comparison
type IgnorePattern struct {
	Pattern string `yaml:"pattern"`
	Comment string `yaml:"comment,omitempty"`

	// compiled regex (not serialized)
	regex *regexp.Regexp
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			FoldToSnakeCase: false,
			Mappings:        make(map[string]string),
		},
		Dates: DatesConfig{
			Enabled:       true,
			ExtraPatterns: []DatePattern{},
		},
		Compare: CompareConfig{
			IgnoreAdditionalProps: false,
			AdditionalPropToken:   DefaultAdditionalPropToken,
			IgnorePaths:           []IgnorePattern{},
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Compare.AdditionalPropToken == "" {
		cfg.Compare.AdditionalPropToken = DefaultAdditionalPropToken
	}

	if err := cfg.compilePatterns(); err != nil {
		return nil, fmt.Errorf("failed to compile patterns: %w", err)
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonshape.yml", ".jsonshape.yaml", "jsonshape.yml", "jsonshape.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// compilePatterns compiles all regex patterns in the config
func (c *Config) compilePatterns() error {
	for i := range c.Dates.ExtraPatterns {
		p := &c.Dates.ExtraPatterns[i]
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			return fmt.Errorf("invalid date pattern '%s': %w", p.Pattern, err)
		}
		p.regex = regex
	}

	for i := range c.Compare.IgnorePaths {
		p := &c.Compare.IgnorePaths[i]
		regex, err := regexp.Compile(p.Pattern)
		if err != nil {
			return fmt.Errorf("invalid ignore path pattern '%s': %w", p.Pattern, err)
		}
		p.regex = regex
	}

	return nil
}

// Matches checks if this date pattern matches the given string value
func (dp *DatePattern) Matches(value string) bool {
	if dp.regex == nil {
		// Try to compile if not already compiled (fallback)
		regex, err := regexp.Compile(dp.Pattern)
		if err != nil {
			return false
		}
		dp.regex = regex
	}
	return dp.regex.MatchString(value)
}

// Matches checks if this ignore pattern matches the given path
func (ip *IgnorePattern) Matches(path string) bool {
	if ip.regex == nil {
		// Try to compile if not already compiled (fallback)
		regex, err := regexp.Compile(ip.Pattern)
		if err != nil {
			return false
		}
		ip.regex = regex
	}
	return ip.regex.MatchString(path)
}

// CanonicalKey returns the path segment used for a JSON object key,
// applying renames and case folding
func (c *Config) CanonicalKey(jsonKey string) string {
	// Check custom mappings first
	if mapped, exists := c.Keys.Mappings[jsonKey]; exists {
		return mapped
	}

	if c.Keys.FoldToSnakeCase {
		return strcase.ToSnake(jsonKey)
	}

	return jsonKey
}

// IsExtraDate checks whether a string value matches any configured
// extra date pattern
func (c *Config) IsExtraDate(value string) bool {
	for i := range c.Dates.ExtraPatterns {
		if c.Dates.ExtraPatterns[i].Matches(value) {
			return true
		}
	}
	return false
}

// ShouldIgnorePath checks if a signature path is excluded from comparison
func (c *Config) ShouldIgnorePath(path string) bool {
	for i := range c.Compare.IgnorePaths {
		if c.Compare.IgnorePaths[i].Matches(path) {
			return true
		}
	}
	return false
}

// AdditionalPropToken returns the effective placeholder token
func (c *Config) AdditionalPropToken() string {
	if c.Compare.AdditionalPropToken == "" {
		return DefaultAdditionalPropToken
	}
	return c.Compare.AdditionalPropToken
}
