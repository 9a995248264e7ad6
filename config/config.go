package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the csvsplit tool.
type Config struct {
	Split   SplitConfig   `yaml:"split"`
	Batch   BatchConfig   `yaml:"batch"`
	History HistoryConfig `yaml:"history"`
}

// SplitConfig holds the defaults for a single split run. Each field can be
// overridden by the corresponding command-line flag.
type SplitConfig struct {
	Input     string `yaml:"input"`
	OutputDir string `yaml:"output_dir"`
	Size      int    `yaml:"size"`
	Delimiter string `yaml:"delimiter"` // single character, "," if empty
}

// BatchConfig holds input discovery patterns for batch mode.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// HistoryConfig controls run history recording.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			Input:     "pws.csv",
			OutputDir: "data",
			Size:      100,
			Delimiter: ",",
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.csv"},
			Excludes: []string{"**/.csvsplit/**"},
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Comma returns the configured field delimiter as a rune.
func (c SplitConfig) Comma() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for csvsplit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	// Try csvsplit.yaml in the directory
	path := filepath.Join(dir, "csvsplit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Try .csvsplit/config.yaml
	path = filepath.Join(dir, ".csvsplit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	// Return defaults
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

// HistoryDBPath returns the path to the run history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".csvsplit", "history.db")
}

// EnsureStateDir ensures the .csvsplit directory exists.
func EnsureStateDir(dir string) error {
	stateDir := filepath.Join(dir, ".csvsplit")
	return os.MkdirAll(stateDir, 0755)
}
