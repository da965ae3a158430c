// Package config handles global configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/bibgen/config.yml.
type Config struct {
	// Mailto is the contact address sent to CrossRef for polite-pool
	// identification.
	Mailto string `yaml:"mailto,omitempty"`
	// APIBaseURL overrides the CrossRef API base URL.
	APIBaseURL string `yaml:"api_base_url,omitempty"`
	// DisableCache turns off the local response cache.
	DisableCache bool `yaml:"disable_cache,omitempty"`
}

const (
	// ConfigDirName is the directory name under XDG_CONFIG_HOME.
	ConfigDirName = "bibgen"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/bibgen/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDirName, ConfigFile)
}

// Load loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// GetMailto returns the polite-pool contact address from config, with the
// BIBGEN_MAILTO environment variable taking precedence.
func GetMailto() string {
	if mailto := os.Getenv("BIBGEN_MAILTO"); mailto != "" {
		return mailto
	}
	cfg, _ := Load()
	return cfg.Mailto
}

// GetAPIBaseURL returns the configured API base URL, or empty for the
// default.
func GetAPIBaseURL() string {
	cfg, _ := Load()
	return cfg.APIBaseURL
}

// CacheDisabled reports whether the response cache is disabled in config.
func CacheDisabled() bool {
	cfg, _ := Load()
	return cfg.DisableCache
}
