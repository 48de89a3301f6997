package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the Bounce Shield configuration.
// Search order: customPath -> ~/.bounce/configs/shield.{yaml,toml} ->
// ./configs/shield.yaml -> embedded default.
//
// Files only need to mention the keys they override; everything else keeps
// its default value.
func Load(customPath string) (ShieldConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"shield.yaml", "shield.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if cfg, err := LoadFile(userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "shield.yaml")); err == nil {
		return cfg, nil
	}

	return Default(), nil
}

// LoadFile reads and decodes a single config file on top of the defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadFile(path string) (ShieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ShieldConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Decode(data, formatFor(path))
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Format names a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Decode parses data in the given format on top of the default config.
func Decode(data []byte, format Format) (ShieldConfig, error) {
	cfg := Default()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Default returns the embedded default configuration.
func Default() ShieldConfig {
	var cfg ShieldConfig
	if err := yaml.Unmarshal(defaultShieldYAML, &cfg); err != nil {
		return DefaultShieldConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Marshal encodes the config in the given format.
func Marshal(cfg ShieldConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: encode yaml: %w", err)
		}
		return data, nil
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}
