package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMeowgic loads Meowgic Catch configuration.
// Search order: customPath -> ~/.meowgic/configs/meowgic.yaml -> ./configs/meowgic.yaml -> embedded default.
// Files are decoded over the defaults, so a partial YAML only overrides the keys it names.
func LoadMeowgic(customPath string) (MeowgicConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MeowgicConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMeowgic(data)
		if err != nil {
			return MeowgicConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("meowgic.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMeowgic(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "meowgic.yaml")); err == nil {
		if cfg, err := ParseMeowgic(data); err == nil {
			return cfg, nil
		}
	}

	var cfg MeowgicConfig
	if err := yaml.Unmarshal(defaultMeowgicYAML, &cfg); err != nil {
		return DefaultMeowgicConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMeowgic decodes YAML on top of the built-in defaults and validates the result.
func ParseMeowgic(data []byte) (MeowgicConfig, error) {
	cfg := DefaultMeowgicConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// MarshalMeowgic encodes a configuration as YAML.
func MarshalMeowgic(cfg MeowgicConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// UserDir returns ~/.meowgic, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".meowgic")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// ApplyMeowgicPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyMeowgicPreset(cfg *MeowgicConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pack and lives based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 7
		cfg.Dogs.Count = 4
		cfg.Dogs.Speed = 55
	case DifficultyHard:
		cfg.Session.Lives = 3
		cfg.Dogs.Count = 8
		cfg.Dogs.Speed = 85
	}
}
