package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAntarctic loads the Antarctic runner configuration and validates it.
// Search order: customPath -> ~/.antarctic/configs/antarctic.yaml -> ./configs/antarctic.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadAntarctic(customPath string) (AntarcticConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AntarcticConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return AntarcticConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("antarctic.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/antarctic.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultAntarcticYAML)
	if err != nil {
		return DefaultAntarcticConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over DefaultAntarcticConfig and validates the result.
func Parse(data []byte) (AntarcticConfig, error) {
	cfg := DefaultAntarcticConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AntarcticConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AntarcticConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a config back to YAML.
func Marshal(cfg AntarcticConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".antarctic", "configs", filename)
}
