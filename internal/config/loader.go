package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlingpuck loads the sling puck tuning.
// Search order: customPath -> ~/.slingpuck/configs/slingpuck.yaml ->
// ./configs/slingpuck.yaml -> embedded default.
// Files are merged over the defaults, so a partial file only overrides the
// keys it names. Only an explicit customPath can produce an error.
func LoadSlingpuck(customPath string) (SlingpuckConfig, error) {
	cfg := DefaultSlingpuckConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultSlingpuckConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slingpuck.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "slingpuck.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSlingpuckYAML, &cfg); err != nil {
		return DefaultSlingpuckConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// tryLoad reads and parses a config file, reporting whether it succeeded.
func tryLoad(path string) (SlingpuckConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SlingpuckConfig{}, false
	}
	cfg := DefaultSlingpuckConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlingpuckConfig{}, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingpuck", "configs", filename)
}
