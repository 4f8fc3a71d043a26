package storage

import (
	"errors"
	"os"
	"path/filepath"
)

// Config holds the file-backed store configuration.
type Config struct {
	// DataFile is the path of the persisted JSON document.
	DataFile string `yaml:"data_file"`
}

// DefaultConfig returns safe defaults for development.
func DefaultConfig() Config {
	return Config{
		DataFile: filepath.Join("data", "realestate.json"),
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.DataFile == "" {
		c.DataFile = DefaultConfig().DataFile
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("REALTY_DATA_FILE"); v != "" {
		c.DataFile = v
	}
}

// ResolvePaths resolves a relative data file path against baseDir.
func (c *Config) ResolvePaths(baseDir string) {
	if c.DataFile != "" && !filepath.IsAbs(c.DataFile) && baseDir != "" {
		c.DataFile = filepath.Join(baseDir, c.DataFile)
	}
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("storage: data_file must not be empty")
	}
	return nil
}
