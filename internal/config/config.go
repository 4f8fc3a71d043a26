// Package config loads the application configuration: defaults, then
// config/config.yml, then config/config.local.yml, then environment
// overrides.
package config

import (
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"realty/internal/server"
	"realty/internal/storage"
)

// Config holds the application configuration.
type Config struct {
	Server  server.Config  `yaml:"server"`
	Storage storage.Config `yaml:"storage"`
	Logging LoggingConfig  `yaml:"logging"`
}

// LoadConfig loads configuration from files and environment variables.
// Order: defaults -> config.yml -> config.local.yml -> env overrides ->
// resolve paths -> validate.
func LoadConfig() *Config {
	return loadConfigDir("config")
}

func loadConfigDir(dir string) *Config {
	cfg := &Config{
		Server:  server.DefaultConfig(),
		Storage: storage.DefaultConfig(),
		Logging: DefaultLoggingConfig(),
	}

	loadFile(filepath.Join(dir, "config.yml"), cfg)
	loadFile(filepath.Join(dir, "config.local.yml"), cfg)

	cfg.Server.ApplyDefaults()
	cfg.Server.ApplyEnvOverrides()
	cfg.Storage.ApplyDefaults()
	cfg.Storage.ApplyEnvOverrides()
	cfg.Logging.ApplyDefaults()
	cfg.Logging.ApplyEnvOverrides()

	if err := cfg.Server.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := cfg.Storage.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	return cfg
}

func loadFile(filename string, cfg *Config) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Printf("Warning: Error reading %s: %v", filename, err)
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("Warning: Error parsing %s: %v", filename, err)
	}
}
