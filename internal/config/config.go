// Package config loads the optional devtools-mcp YAML configuration.
//
// Configuration is entirely optional; a missing file yields the zero
// Config. Lookup follows first-match semantics: an explicit path must
// exist, otherwise ./devtools.yaml is tried, then
// ~/.devtools-mcp/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	projectConfigName = "devtools.yaml"
	homeConfigDir     = ".devtools-mcp"
	homeConfigName    = "config.yaml"
)

// Config is the file shape.
type Config struct {
	// LogLevel enables debug logging on stderr when set to "debug".
	LogLevel string `yaml:"log_level"`

	// DisabledTools lists tool names excluded from the registry.
	DisabledTools []string `yaml:"disabled_tools"`
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c != nil && strings.EqualFold(c.LogLevel, "debug")
}

// Disabled reports whether the named tool is disabled.
func (c *Config) Disabled(name string) bool {
	if c == nil {
		return false
	}
	for _, t := range c.DisabledTools {
		if strings.EqualFold(strings.TrimSpace(t), name) {
			return true
		}
	}
	return false
}

// Discover resolves the config file location with first-match
// semantics. It returns the path and whether a file was found; an
// explicit path that does not exist is an error, implicit candidates
// are skipped silently.
func Discover(explicitPath string) (string, bool, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("resolve working directory: %w", err)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", false, fmt.Errorf("resolve user home: %w", err)
	}
	return DiscoverFrom(explicitPath, cwd, homeDir)
}

// DiscoverFrom is a testable variant of Discover.
func DiscoverFrom(explicitPath, cwd, homeDir string) (string, bool, error) {
	var candidates []string
	explicit := strings.TrimSpace(explicitPath) != ""
	if explicit {
		candidates = []string{filepath.Clean(strings.TrimSpace(explicitPath))}
	} else {
		candidates = []string{
			filepath.Join(cwd, projectConfigName),
			filepath.Join(homeDir, homeConfigDir, homeConfigName),
		}
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				if explicit {
					return "", false, fmt.Errorf("config path %q is a directory, not a file", candidate)
				}
				continue
			}
			return candidate, true, nil
		}
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return "", false, fmt.Errorf("config file %q not found", candidate)
			}
			continue
		}
		return "", false, fmt.Errorf("checking config path %q: %w", candidate, err)
	}
	return "", false, nil
}

// Load reads and parses one config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault discovers and loads the config, returning the zero
// Config when no file exists.
func LoadOrDefault(explicitPath string) (*Config, error) {
	path, found, err := Discover(explicitPath)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Config{}, nil
	}
	return Load(path)
}
