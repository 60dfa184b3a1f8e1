package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
)

// LocalPath is the project-local config location.
const LocalPath = "configs/spaceflappy.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.spaceflappy/config.yaml -> ./configs/spaceflappy.yaml -> embedded default
// Files are decoded over DefaultConfig, so they only need the keys they change.
func Load(customPath string) (GameConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory. A broken file there is reported rather
	// than silently skipped.
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			cfg, err := loadFile(userCfgPath)
			return cfg, SourceUser, err
		}
	}

	// Try local configs directory
	if _, err := os.Stat(LocalPath); err == nil {
		cfg, err := loadFile(LocalPath)
		return cfg, SourceLocal, err
	}

	cfg, err := parseEmbedded(defaultYAML)
	return cfg, SourceEmbedded, err
}

// parseEmbedded parses the built-in defaults file.
func parseEmbedded(data []byte) (GameConfig, error) {
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: embedded defaults: %w", err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

func loadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spaceflappy", filename)
}
