package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
	Upload UploadConfig `yaml:"upload"`
}

// RenderConfig contains render-related configuration
type RenderConfig struct {
	Width   int    `yaml:"width"`
	Samples int    `yaml:"samples"`
	Depth   int    `yaml:"depth"`
	Workers int    `yaml:"workers"` // 0 means use the CPU count
	Seed    int64  `yaml:"seed"`
	Scene   string `yaml:"scene"` // Path to a YAML scene file; empty uses the built-in scene
}

// OutputConfig contains output-related configuration
type OutputConfig struct {
	Prefix       string `yaml:"prefix"` // Produces <prefix>.ppm and <prefix>.png
	Preview      bool   `yaml:"preview"`
	PreviewWidth int    `yaml:"preview_width"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error, fatal
}

// UploadConfig contains the optional S3 publish configuration.
// Credentials come from the environment, not the file.
type UploadConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Bucket    string `yaml:"bucket"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	KeyPrefix string `yaml:"key_prefix"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Render: RenderConfig{
			Width:   2000,
			Samples: 20,
			Depth:   15,
			Workers: 0,
			Seed:    42,
		},
		Output: OutputConfig{
			Prefix:       "render",
			Preview:      false,
			PreviewWidth: 256,
		},
		Log: LogConfig{
			Level: "info",
		},
		Upload: UploadConfig{
			Region:    "us-east-1",
			KeyPrefix: "renders",
		},
	}
}

// Load reads configuration from a YAML file, filling unset fields with
// defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a YAML file
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
