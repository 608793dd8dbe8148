// Package config loads and persists the punchcard settings document.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Export ExportConfig `yaml:"export"`
}

// StoreConfig holds the store location.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ExportConfig holds export presentation preferences.
type ExportConfig struct {
	// Dir is where generated report files land when no explicit output
	// path is given.
	Dir string `yaml:"dir"`
}

// Load reads configuration from the YAML settings document and environment
// variables. A missing settings document is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Config{
		Store: StoreConfig{
			Path: DefaultStorePath(),
		},
		Log: LogConfig{
			Level: "info",
		},
		Export: ExportConfig{
			Dir: ".",
		},
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	if err := loadFromFile(path, &cfg); err != nil {
		return Config{}, err
	}

	if storePath := os.Getenv("PUNCHCARD_DB_PATH"); storePath != "" {
		cfg.Store.Path = storePath
	}
	if level := os.Getenv("PUNCHCARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if dir := os.Getenv("PUNCHCARD_EXPORT_DIR"); dir != "" {
		cfg.Export.Dir = dir
	}

	return cfg, nil
}

// Save writes the settings document, creating its directory if needed. Used
// when the store location is (re)selected.
func Save(path string, cfg Config) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
