// Package config provides unified configuration loading for the converter.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the converter.
type Config struct {
	Taxonomy      TaxonomyConfig      `yaml:"taxonomy"`
	Synonyms      SynonymsConfig      `yaml:"synonyms"`
	Platform      PlatformConfig      `yaml:"platform"`
	Conversion    ConversionConfig    `yaml:"conversion"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// TaxonomyConfig holds the three taxonomy source locations.
type TaxonomyConfig struct {
	CategoriesPath       string `yaml:"categories_path"`
	SubCategoriesPath    string `yaml:"sub_categories_path"`
	SubSubCategoriesPath string `yaml:"sub_sub_categories_path"`
	// The reference taxonomy exports carry no header row.
	HasHeader bool `yaml:"has_header"`
}

// SynonymsConfig holds the synonym group configuration.
type SynonymsConfig struct {
	// File points at a YAML file with a top-level "groups" list.
	// Empty means built-in defaults.
	File string `yaml:"file"`
	// Groups supplied inline are merged with the file and defaults.
	Groups [][]string `yaml:"groups"`
}

// PlatformConfig holds platform detection settings.
type PlatformConfig struct {
	// Priority breaks detection ties; earlier wins.
	Priority []string `yaml:"priority"`
	// MinSignatureHits is the minimum header overlap before a profile
	// is accepted instead of the custom sentinel.
	MinSignatureHits int `yaml:"min_signature_hits"`
}

// ConversionConfig holds per-job transformation settings.
type ConversionConfig struct {
	Workers           int   `yaml:"workers"`
	DefaultCategoryID int64 `yaml:"default_category_id"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Taxonomy: TaxonomyConfig{
			CategoriesPath:       "categories.csv",
			SubCategoriesPath:    "sub_categories.csv",
			SubSubCategoriesPath: "sub_sub_categories.csv",
			HasHeader:            false,
		},
		Platform: PlatformConfig{
			Priority:         []string{"shopify", "amazon", "woocommerce"},
			MinSignatureHits: 1,
		},
		Conversion: ConversionConfig{
			Workers:           4,
			DefaultCategoryID: 1,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Conversion.Workers < 1 {
		return fmt.Errorf("conversion workers must be at least 1, got %d", c.Conversion.Workers)
	}

	if c.Conversion.DefaultCategoryID < 1 {
		return fmt.Errorf("default category id must be positive, got %d", c.Conversion.DefaultCategoryID)
	}

	if c.Platform.MinSignatureHits < 1 {
		return fmt.Errorf("min_signature_hits must be at least 1, got %d", c.Platform.MinSignatureHits)
	}

	if len(c.Platform.Priority) == 0 {
		return fmt.Errorf("platform priority order must not be empty")
	}

	for _, g := range c.Synonyms.Groups {
		if len(g) < 2 {
			return fmt.Errorf("synonym group %v needs at least two terms", g)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TAXONOMY_DIR"); v != "" {
		cfg.Taxonomy.CategoriesPath = filepath.Join(v, "categories.csv")
		cfg.Taxonomy.SubCategoriesPath = filepath.Join(v, "sub_categories.csv")
		cfg.Taxonomy.SubSubCategoriesPath = filepath.Join(v, "sub_sub_categories.csv")
	}

	if v := os.Getenv("SYNONYMS_FILE"); v != "" {
		cfg.Synonyms.File = v
	}

	if v := os.Getenv("CONVERT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Conversion.Workers = n
		}
	}

	if v := os.Getenv("DEFAULT_CATEGORY_ID"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Conversion.DefaultCategoryID = n
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

// ResolveRelativePath resolves a path relative to the config file location.
func ResolveRelativePath(configPath, targetPath string) string {
	if filepath.IsAbs(targetPath) {
		return targetPath
	}
	configDir := filepath.Dir(configPath)
	return filepath.Join(configDir, targetPath)
}
