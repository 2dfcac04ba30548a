package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pomoplan/pomoplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader_DefaultsWhenNoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Timer.PomodoroDuration)
	assert.Equal(t, 5, cfg.Timer.ShortBreakDuration)
	assert.Equal(t, 15, cfg.Timer.LongBreakDuration)
	assert.False(t, cfg.Timer.AutoStartBreaks)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_GlobalOverridesDefaults(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[timer]
pomodoro_duration = 50
auto_start_breaks = true
`)
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Timer.PomodoroDuration)
	assert.True(t, cfg.Timer.AutoStartBreaks)
	// Unset keys keep defaults.
	assert.Equal(t, 5, cfg.Timer.ShortBreakDuration)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[timer]
pomodoro_duration = 50
auto_start_breaks = true
`)
	localDir := t.TempDir()
	writeConfig(t, localDir, domain.LocalConfigFileName, `
[timer]
pomodoro_duration = 15
auto_start_breaks = false

[log]
level = "debug"
`)
	loader := NewLoaderWithGlobalDir(localDir, globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Timer.PomodoroDuration)
	assert.False(t, cfg.Timer.AutoStartBreaks)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_InvalidTOMLFails(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, "not [valid toml")
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_NegativeDurationFails(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigFileName, `
[timer]
pomodoro_duration = -1
`)
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	_, err := loader.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
}
