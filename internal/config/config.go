// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const appName = "todo-reminder"

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Reminder ReminderConfig `yaml:"reminder"`
	UI       UIConfig       `yaml:"ui"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig holds task file settings.
type StoreConfig struct {
	// Path is the task file; relative paths resolve against the working directory
	Path string `yaml:"path"`
}

// ReminderConfig holds reminder scan and alert settings.
type ReminderConfig struct {
	Interval      time.Duration `yaml:"interval"`
	Ringtone      string        `yaml:"ringtone,omitempty"` // empty plays a beep
	DesktopNotify bool          `yaml:"desktop_notify"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode   bool `yaml:"vim_mode"`
	ShowClock bool `yaml:"show_clock"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"` // defaults to <config dir>/todo-reminder.log
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "tasks.json",
		},
		Reminder: ReminderConfig{
			Interval:      time.Minute,
			DesktopNotify: true,
		},
		UI: UIConfig{
			VimMode:   true,
			ShowClock: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Uses XDG_CONFIG_HOME or defaults to ~/.config. Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath returns the configured log file, or the default inside ConfigDir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// Load reads the configuration from the config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration at path, applying defaults for missing fields.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes the configuration to path.
func SaveFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SetRingtone records the ringtone in the config file.
func SetRingtone(ringtone string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SetRingtoneFile(path, ringtone)
}

// SetRingtoneFile re-reads the config at path, changes only the ringtone and
// writes it back. Values overridden at runtime never reach the file.
func SetRingtoneFile(path, ringtone string) error {
	cfg, err := LoadFile(path)
	if err != nil {
		return err
	}
	cfg.Reminder.Ringtone = ringtone
	return SaveFile(path, cfg)
}

// Validate checks values that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	// Reminders match on the minute, so every minute needs a tick.
	if iv := c.Reminder.Interval; iv < time.Second || iv > time.Minute || time.Minute%iv != 0 {
		return fmt.Errorf("reminder.interval must be between 1s and 1m and divide a minute evenly, got %s", iv)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	return nil
}
