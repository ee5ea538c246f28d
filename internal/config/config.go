// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for epr.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables (EPR_SERVICE, EPR_TOKEN)
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and automatic discovery of
// configuration in standard locations. The config file is where tokens for
// several services can live side by side, so switching providers does not
// require re-exporting environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads configuration and applies environment overrides. If configPath
// is provided, it loads from that specific file. Otherwise, it searches
// standard locations:
//   - .epr.yaml (current directory)
//   - .epr.yml (current directory)
//   - ~/.epr/config.yaml
//   - ~/.epr/config.yml
//
// Returns an error if the specified config file cannot be loaded, but
// succeeds with defaults if no config file is found in standard locations.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".epr.yaml",
			".epr.yml",
			filepath.Join(os.Getenv("HOME"), ".epr", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".epr", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if service := os.Getenv("EPR_SERVICE"); service != "" {
		cfg.Service = service
	}
}

// Validate checks if the configuration contains valid values. This should be
// called after loading configuration to catch invalid settings early, before
// any network activity.
func (c *Config) Validate() error {
	switch c.Service {
	case "github", "gitlab", "bitbucket":
		return nil
	}
	return fmt.Errorf("unknown service %q in configuration (expected github, gitlab or bitbucket)", c.Service)
}
