package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraConfig "github.com/jwigmo/todotxt/internal/infra/config"
)

func TestLoadSettings_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := infraConfig.LoadSettings(fs, "/home/user/.todotxt")
	require.NoError(t, err)

	assert.Equal(t, "/home/user/.todotxt", cfg.Home())
	assert.Equal(t, "todo.txt", cfg.TodoFile())
	assert.Equal(t, "warn", cfg.StderrLevel())
	assert.Equal(t, "default", cfg.ConfigSource())
	assert.Equal(t, "", cfg.SettingPath())
}

func TestLoadSettings_FromYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	yml := "todo_file: tasks.txt\nstderr_level: debug\n"
	require.NoError(t, afero.WriteFile(fs, "/base/settings.yml", []byte(yml), 0o644))

	cfg, err := infraConfig.LoadSettings(fs, "/base")
	require.NoError(t, err)

	assert.Equal(t, "/base", cfg.Home())
	assert.Equal(t, "tasks.txt", cfg.TodoFile())
	assert.Equal(t, "debug", cfg.StderrLevel())
	assert.Equal(t, "yaml", cfg.ConfigSource())
	assert.Equal(t, "/base/settings.yml", cfg.SettingPath())
}

func TestLoadSettings_MalformedYAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/base/settings.yml", []byte("todo_file: [unclosed"), 0o644))

	_, err := infraConfig.LoadSettings(fs, "/base")
	assert.Error(t, err)
}
