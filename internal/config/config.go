// Package config loads the ambient configuration of the linter: log
// level and optional file logging. The config file never changes the
// CLI contract; it only tunes observability.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
)

const appDirName = "dotenv-linter"

// FileLoggingConfig represents file-based logging configuration
type FileLoggingConfig struct {
	Enabled    bool   `json:"enabled"`      // Whether file logging is enabled
	Filename   string `json:"filename"`     // Log file path (empty = XDG state path)
	MaxSizeMB  int    `json:"max_size_mb"`  // Max file size in MB before rotation
	MaxBackups int    `json:"max_backups"`  // Max number of backup files to keep
	MaxAgeDays int    `json:"max_age_days"` // Max age in days before deletion
	Compress   bool   `json:"compress"`     // Whether to compress rotated files
}

// Config represents dotenv-linter configuration
type Config struct {
	LogLevel    string             `json:"log_level"`              // Log level (debug, info, warn, error)
	FileLogging *FileLoggingConfig `json:"file_logging,omitempty"` // File logging configuration
}

// Manager handles loading and validating configuration
type Manager struct {
	fs afero.Fs
}

// NewManager creates a new configuration manager over the given
// filesystem.
func NewManager(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// Defaults returns the default configuration.
func (m *Manager) Defaults() *Config {
	return &Config{
		LogLevel: "warn",
	}
}

// Load reads the config file from the XDG config path when present,
// then applies environment overrides. A missing file is not an error.
func (m *Manager) Load() (*Config, error) {
	cfg := m.Defaults()

	path := filepath.Join(xdg.ConfigHome, appDirName, "config.json")
	data, err := afero.ReadFile(m.fs, path)
	switch {
	case os.IsNotExist(err):
		slog.Debug("no config file found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		slog.Debug("config file loaded", "path", path)
	}

	m.applyEnvironmentOverrides(cfg)

	if err := m.validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvironmentOverrides applies DOTENV_LINTER_* variables on top
// of the file configuration.
func (m *Manager) applyEnvironmentOverrides(cfg *Config) {
	if level := os.Getenv("DOTENV_LINTER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
		slog.Debug("log level override applied", "value", cfg.LogLevel)
	}
	if file := os.Getenv("DOTENV_LINTER_LOG_FILE"); file != "" {
		if cfg.FileLogging == nil {
			cfg.FileLogging = &FileLoggingConfig{MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 30}
		}
		cfg.FileLogging.Enabled = true
		cfg.FileLogging.Filename = file
		slog.Debug("log file override applied", "value", file)
	}
}

// validate rejects configurations the logging layer cannot honor.
func (m *Manager) validate(cfg *Config) error {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", cfg.LogLevel)
	}
}

// ResolveLogFilePath returns the log file location, defaulting to the
// XDG state directory when the configuration names no file.
func ResolveLogFilePath(filename string) string {
	if filename != "" {
		return filename
	}
	return filepath.Join(xdg.StateHome, appDirName, "dotenv-linter.log")
}
