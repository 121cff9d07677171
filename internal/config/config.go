package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside a data directory.
const FileName = "finscope.yaml"

// Config represents the top-level finscope.yaml configuration.
type Config struct {
	Banks       []BankConfig `yaml:"banks"`
	Categorizer Categorizer  `yaml:"categorizer"`
	MappingFile string       `yaml:"mapping_file"`
	SummaryFile string       `yaml:"summary_file"`
}

// BankConfig ties statement files to a registered bank parser.
type BankConfig struct {
	ID string `yaml:"id"`
	// FileMatch is a lower-cased substring matched against statement
	// file names to pick the bank; defaults to the bank id.
	FileMatch string `yaml:"file_match,omitempty"`
	// SkipRows overrides the parser's default preamble line count for
	// export tools that produce a different layout.
	SkipRows *int `yaml:"skip_rows,omitempty"`
}

// Categorizer controls how unmapped merchants are resolved.
type Categorizer struct {
	// Mode is "auto" or "prompt".
	Mode string `yaml:"mode"`
	// LearnFallbacks persists auto-assigned fallback categories.
	LearnFallbacks bool `yaml:"learn_fallbacks"`
	// FallbackCategory is the bucket for unresolvable merchants.
	FallbackCategory string `yaml:"fallback_category"`
}

const (
	ModeAuto   = "auto"
	ModePrompt = "prompt"
)

// Load reads a finscope.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Categorizer.Mode != ModeAuto && cfg.Categorizer.Mode != ModePrompt {
		return nil, fmt.Errorf("categorizer mode must be %q or %q, got %q", ModeAuto, ModePrompt, cfg.Categorizer.Mode)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Banks: []BankConfig{
			{ID: "hdfc"},
			{ID: "sbi"},
		},
		Categorizer: Categorizer{
			Mode:             ModePrompt,
			LearnFallbacks:   false,
			FallbackCategory: "Misl",
		},
		MappingFile: "merchant-mappings.json",
		SummaryFile: "summary.csv",
	}
}

// BankForFile returns the configured bank id for a statement file name.
func (c *Config) BankForFile(fileName string) (string, bool) {
	lower := strings.ToLower(fileName)
	for _, b := range c.Banks {
		match := b.FileMatch
		if match == "" {
			match = b.ID
		}
		if strings.Contains(lower, strings.ToLower(match)) {
			return b.ID, true
		}
	}
	return "", false
}

// SkipRowsFor returns the configured preamble override for a bank.
func (c *Config) SkipRowsFor(bank string) (int, bool) {
	for _, b := range c.Banks {
		if b.ID == bank && b.SkipRows != nil {
			return *b.SkipRows, true
		}
	}
	return 0, false
}
