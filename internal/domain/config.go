package domain

import (
	_ "embed"
)

//go:embed config_template.toml
var configTemplateContent string

// ConfigFileName is the file name for global configuration.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the file name for per-directory overrides.
const LocalConfigFileName = ".pomoplan.toml"

// ConfigTemplate returns the commented default config file content.
func ConfigTemplate() string {
	return configTemplateContent
}

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Timer   TimerConfig   `toml:"timer"`
	Planner PlannerConfig `toml:"planner"`
	Log     LogConfig     `toml:"log"`
}

// TimerConfig holds interval settings from the [timer] section.
// Durations are in minutes.
type TimerConfig struct {
	PomodoroDuration   int  `toml:"pomodoro_duration,omitempty"`
	ShortBreakDuration int  `toml:"short_break_duration,omitempty"`
	LongBreakDuration  int  `toml:"long_break_duration,omitempty"`
	AutoStartBreaks    bool `toml:"auto_start_breaks,omitempty"`
	AutoStartPomodoros bool `toml:"auto_start_pomodoros,omitempty"`
}

// PlannerConfig holds settings for the plan extraction client from [planner].
type PlannerConfig struct {
	Model     string `toml:"model,omitempty"`      // Anthropic model name
	MaxTokens int    `toml:"max_tokens,omitempty"` // Response token budget
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default interval durations, in minutes.
const (
	DefaultPomodoroMinutes   = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

// Planner defaults.
const (
	DefaultPlannerModel     = "claude-3-5-haiku-20241022"
	DefaultPlannerMaxTokens = 1024
)

// NewDefaultConfig returns a Config with all defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			PomodoroDuration:   DefaultPomodoroMinutes,
			ShortBreakDuration: DefaultShortBreakMinutes,
			LongBreakDuration:  DefaultLongBreakMinutes,
		},
		Planner: PlannerConfig{
			Model:     DefaultPlannerModel,
			MaxTokens: DefaultPlannerMaxTokens,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Settings is the timer engine's read-only view of the configuration.
// Fields are ordered to minimize memory padding.
type Settings struct {
	PomodoroDuration   int  // Focus interval, minutes
	ShortBreakDuration int  // Short break, minutes
	LongBreakDuration  int  // Long break, minutes
	AutoStartBreaks    bool // Start breaks without waiting in Idle
	AutoStartPomodoros bool // Start focus intervals without waiting in Idle
}

// Settings derives validated engine settings from the configuration.
// Non-positive durations fall back to the defaults.
func (c *Config) Settings() Settings {
	s := Settings{
		PomodoroDuration:   c.Timer.PomodoroDuration,
		ShortBreakDuration: c.Timer.ShortBreakDuration,
		LongBreakDuration:  c.Timer.LongBreakDuration,
		AutoStartBreaks:    c.Timer.AutoStartBreaks,
		AutoStartPomodoros: c.Timer.AutoStartPomodoros,
	}
	if s.PomodoroDuration <= 0 {
		s.PomodoroDuration = DefaultPomodoroMinutes
	}
	if s.ShortBreakDuration <= 0 {
		s.ShortBreakDuration = DefaultShortBreakMinutes
	}
	if s.LongBreakDuration <= 0 {
		s.LongBreakDuration = DefaultLongBreakMinutes
	}
	return s
}

// Validate checks the configured durations.
func (c *Config) Validate() error {
	if c.Timer.PomodoroDuration < 0 || c.Timer.ShortBreakDuration < 0 || c.Timer.LongBreakDuration < 0 {
		return ErrInvalidDuration
	}
	return nil
}
