package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database DatabaseConfig `toml:"database"`
	Output   OutputConfig   `toml:"output"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: defaultDBPath(),
		},
		Output: OutputConfig{
			Color: "auto",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

const dbName = "pomdb.sqlite"

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return dbName
	}
	return filepath.Join(dir, "pom", dbName)
}
