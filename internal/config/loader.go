package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs and the database.
const AppDir = ".color-runner"

// LoadRunner loads the game configuration.
// Search order: customPath -> ~/.color-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
//
// A customPath that cannot be read or parsed is an error; the other
// locations are skipped silently when missing or broken.
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultRunnerConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("runner.yaml"); userCfgPath != "" {
		if cfg, ok := loadFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := loadFile(filepath.Join("configs", "runner.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile parses path on top of the defaults so partial files only
// override what they mention.
func loadFile(path string) (RunnerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunnerConfig{}, false
	}
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}
