// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pomoplan/pomoplan/internal/domain"
)

// Ensure Loader implements the config ports.
var (
	_ domain.ConfigLoader      = (*Loader)(nil)
	_ domain.ConfigInitializer = (*Loader)(nil)
)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Directory searched for .pomoplan.toml
	globalConfDir string // Global config directory (e.g., ~/.config/pomoplan)
}

// NewLoader creates a new Loader for the given working directory.
func NewLoader(localDir string) *Loader {
	globalDir, err := domain.GlobalConfigDir()
	if err != nil {
		globalDir = ""
	}
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalDir,
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// fileConfig mirrors domain.Config with pointer fields so a file can
// override only the keys it sets.
type fileConfig struct {
	Timer struct {
		PomodoroDuration   *int  `toml:"pomodoro_duration"`
		ShortBreakDuration *int  `toml:"short_break_duration"`
		LongBreakDuration  *int  `toml:"long_break_duration"`
		AutoStartBreaks    *bool `toml:"auto_start_breaks"`
		AutoStartPomodoros *bool `toml:"auto_start_pomodoros"`
	} `toml:"timer"`
	Planner struct {
		Model     *string `toml:"model"`
		MaxTokens *int    `toml:"max_tokens"`
	} `toml:"planner"`
	Log struct {
		Level *string `toml:"level"`
	} `toml:"log"`
}

// apply overlays the file's set keys onto cfg.
func (f *fileConfig) apply(cfg *domain.Config) {
	if f.Timer.PomodoroDuration != nil {
		cfg.Timer.PomodoroDuration = *f.Timer.PomodoroDuration
	}
	if f.Timer.ShortBreakDuration != nil {
		cfg.Timer.ShortBreakDuration = *f.Timer.ShortBreakDuration
	}
	if f.Timer.LongBreakDuration != nil {
		cfg.Timer.LongBreakDuration = *f.Timer.LongBreakDuration
	}
	if f.Timer.AutoStartBreaks != nil {
		cfg.Timer.AutoStartBreaks = *f.Timer.AutoStartBreaks
	}
	if f.Timer.AutoStartPomodoros != nil {
		cfg.Timer.AutoStartPomodoros = *f.Timer.AutoStartPomodoros
	}
	if f.Planner.Model != nil {
		cfg.Planner.Model = *f.Planner.Model
	}
	if f.Planner.MaxTokens != nil {
		cfg.Planner.MaxTokens = *f.Planner.MaxTokens
	}
	if f.Log.Level != nil {
		cfg.Log.Level = *f.Log.Level
	}
}

// Load returns the merged configuration: defaults <- global <- local
// (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		globalPath := filepath.Join(l.globalConfDir, domain.ConfigFileName)
		if err := l.overlayFile(globalPath, cfg); err != nil {
			return nil, err
		}
	}

	if l.localDir != "" {
		localPath := filepath.Join(l.localDir, domain.LocalConfigFileName)
		if err := l.overlayFile(localPath, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GlobalConfigPath returns the path of the global config file.
func (l *Loader) GlobalConfigPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// InitGlobalConfig writes the commented default config template to the
// global config path. Returns domain.ErrConfigExists if the file already
// exists.
func (l *Loader) InitGlobalConfig() (string, error) {
	path := l.GlobalConfigPath()
	if path == "" {
		return "", fmt.Errorf("global config directory unavailable")
	}

	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat config %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(domain.ConfigTemplate()), 0o600); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}
	return path, nil
}

// overlayFile parses path if it exists and applies its keys to cfg.
func (l *Loader) overlayFile(path string, cfg *domain.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	file.apply(cfg)
	return nil
}
