package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the analyser.
type Config struct {
	Books    BooksConfig    `yaml:"books"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// BooksConfig controls how book files are discovered.
type BooksConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// AnalysisConfig holds the export defaults: how many example sentences per
// character, the comprehension target and frequency floor for the learn
// export, and the default sort directions (reversed = largest first).
type AnalysisConfig struct {
	Examples          int  `yaml:"examples"`
	Comprehension     int  `yaml:"comprehension"`
	Threshold         int  `yaml:"threshold"`
	FrequencyReversed bool `yaml:"frequency_reversed"`
	SpacingReversed   bool `yaml:"spacing_reversed"`
}

// CacheConfig controls the persistent analysis cache.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Books: BooksConfig{
			Includes: []string{"**/*.txt"},
			Excludes: []string{},
		},
		Analysis: AnalysisConfig{
			Examples:          2,
			Comprehension:     98,
			Threshold:         20,
			FrequencyReversed: true,
			SpacingReversed:   true,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for hanzibook.yaml,
// then .hanzibook/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "hanzibook.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".hanzibook", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CacheDBPath returns the path to the analysis cache database.
func CacheDBPath(dir string) string {
	return filepath.Join(dir, ".hanzibook", "books.db")
}

// EnsureCacheDir ensures the .hanzibook directory exists.
func EnsureCacheDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".hanzibook"), 0755)
}
