// Package config loads service configuration from an optional YAML file with
// environment overrides on top. A missing file is not an error; every field
// has a usable default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Assist  AssistConfig  `yaml:"assist"`
	// DefaultLocale is used when a request names no language: "en" or "hi".
	DefaultLocale string `yaml:"default_locale"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type StorageConfig struct {
	// DataDir holds the persisted action-plan checklist.
	DataDir string `yaml:"data_dir"`
}

type AssistConfig struct {
	// APIKey enables the Gemini description assistant; empty disables it.
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

func Default() *Config {
	return &Config{
		Server:        ServerConfig{Port: "8080"},
		Storage:       StorageConfig{DataDir: "data"},
		Assist:        AssistConfig{Model: "gemini-2.5-flash"},
		DefaultLocale: "en",
	}
}

// Load reads path when it exists, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DBT_DATA_DIR"); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Assist.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Assist.Model = v
	}
	if v := os.Getenv("DBT_DEFAULT_LOCALE"); v != "" {
		c.DefaultLocale = v
	}
}
