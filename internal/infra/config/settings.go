// Package config loads application settings from the base directory.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jwigmo/todotxt/internal/app/config"
)

// RawSettings represents the structure of the settings.yml file.
// Pointer fields distinguish "absent" from "set to zero value".
type RawSettings struct {
	Home        *string `yaml:"home"`
	TodoFile    *string `yaml:"todo_file"`
	StderrLevel *string `yaml:"stderr_level"`
}

// LoadSettings loads configuration from settings.yml in baseDir.
// Priority: settings.yml > defaults. A missing file is not an error;
// a malformed one is.
func LoadSettings(fs afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	yamlPath := filepath.Join(baseDir, "settings.yml")
	if data, err := afero.ReadFile(fs, yamlPath); err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
		}
		configSource = "yaml"
		settingPath = yamlPath
	}

	applyDefaults(settings, baseDir)

	return config.NewAppConfig(
		*settings.Home,
		*settings.TodoFile,
		*settings.StderrLevel,
		configSource,
		settingPath,
	), nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings, baseDir string) {
	if settings.Home == nil {
		v := baseDir
		settings.Home = &v
	}
	if settings.TodoFile == nil {
		v := "todo.txt"
		settings.TodoFile = &v
	}
	if settings.StderrLevel == nil {
		v := "warn"
		settings.StderrLevel = &v
	}
}
