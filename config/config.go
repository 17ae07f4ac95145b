// The MIT License (MIT)

// Copyright (c) 2016, 2017 Fabian Wenzelmann

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config provides configuration loading for the axiom converter.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FabianWe/elaxioms"
)

// Config is the complete converter configuration.
type Config struct {
	// NeverGroupAttributes are attribute types that are always rendered
	// ungrouped.
	NeverGroupAttributes []int64   `yaml:"never_group_attributes"`
	Workers              int       `yaml:"workers"`
	Log                  LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	// Mode is either "development" or "production".
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the SNOMED CT defaults: laterality is
// never grouped.
func DefaultConfig() *Config {
	return &Config{
		NeverGroupAttributes: []int64{elaxioms.Laterality},
		Workers:              4,
		Log: LogConfig{
			Mode:  "development",
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	for _, id := range c.NeverGroupAttributes {
		if id <= 0 {
			return fmt.Errorf("never_group_attributes: %d is not a valid identifier", id)
		}
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	switch c.Log.Mode {
	case "development", "production":
	default:
		return fmt.Errorf("log.mode must be development or production, got %q", c.Log.Mode)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, unset values keep
// their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML configuration data.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.NeverGroupAttributes) > 0 {
		c.NeverGroupAttributes = other.NeverGroupAttributes
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
	if other.Log.Mode != "" {
		c.Log.Mode = other.Log.Mode
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
