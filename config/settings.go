// Package config provides application settings loaded from environment
// variables and an optional settings file.
//
// Settings are created via New() or Load() which handle:
// - Environment variable parsing with validation
// - Default value application
// - YAML or TOML file overlay, chosen by extension

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/richinex/ripgrepy/ripgrep"
)

// Environment variables read by New and Load.
const (
	EnvBinary         = "RIPGREPY_BINARY"
	EnvTimeout        = "RIPGREPY_TIMEOUT"
	EnvLogLevel       = "RIPGREPY_LOG_LEVEL"
	EnvHistoryDB      = "RIPGREPY_HISTORY_DB"
	EnvDefaultOptions = "RIPGREPY_DEFAULT_OPTIONS"
)

// Settings holds all application configuration.
type Settings struct {
	Search  SearchConfig
	History HistoryConfig
	Log     LogConfig
}

// SearchConfig holds defaults applied to every search.
type SearchConfig struct {
	Binary         string        // explicit rg path; empty looks up "rg"
	Timeout        time.Duration // zero disables the timeout
	DefaultOptions []OptionArg   // applied before per-search options
}

// HistoryConfig locates the run history database.
type HistoryConfig struct {
	Path string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level log.Level
}

// fileSettings mirrors the settings file layout.
type fileSettings struct {
	Binary         string   `yaml:"binary" toml:"binary"`
	Timeout        string   `yaml:"timeout" toml:"timeout"`
	LogLevel       string   `yaml:"log_level" toml:"log_level"`
	HistoryDB      string   `yaml:"history_db" toml:"history_db"`
	DefaultOptions []string `yaml:"default_options" toml:"default_options"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		History: HistoryConfig{Path: defaultHistoryPath()},
		Log:     LogConfig{Level: log.WarnLevel},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".ripgrepy", "history.db")
	}
	return filepath.Join(home, ".local", "share", "ripgrepy", "history.db")
}

// New creates settings from defaults and environment variables.
// Returns an error if an environment variable holds an invalid value.
func New() (Settings, error) {
	s := Default()
	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load is New with a settings file applied between the defaults and the
// environment. An empty path behaves like New.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		fs, err := readFile(path)
		if err != nil {
			return Settings{}, err
		}
		if err := s.apply(fs, "file "+path); err != nil {
			return Settings{}, err
		}
	}
	if err := s.applyEnv(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// MustNew creates settings from the environment.
// Panics if environment variables are invalid.
// Use this only when configuration errors should be fatal.
func MustNew() Settings {
	settings, err := New()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

func readFile(path string) (fileSettings, error) {
	var fs fileSettings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &fs); err != nil {
			return fileSettings{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fileSettings{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return fileSettings{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return fileSettings{}, fmt.Errorf("unsupported settings file extension %q (want .yaml, .yml or .toml)", ext)
	}
	return fs, nil
}

func (s *Settings) applyEnv() error {
	fs := fileSettings{
		Binary:    os.Getenv(EnvBinary),
		Timeout:   os.Getenv(EnvTimeout),
		LogLevel:  os.Getenv(EnvLogLevel),
		HistoryDB: os.Getenv(EnvHistoryDB),
	}
	if v := os.Getenv(EnvDefaultOptions); v != "" {
		fs.DefaultOptions = splitList(v)
	}
	return s.apply(fs, "environment")
}

// apply overlays the non-empty fields of fs.
func (s *Settings) apply(fs fileSettings, source string) error {
	if fs.Binary != "" {
		s.Search.Binary = fs.Binary
	}
	if fs.Timeout != "" {
		d, err := parseTimeout(fs.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in %s: %q: %w", source, fs.Timeout, err)
		}
		s.Search.Timeout = d
	}
	if fs.LogLevel != "" {
		lvl, err := log.ParseLevel(strings.ToLower(fs.LogLevel))
		if err != nil {
			return fmt.Errorf("invalid log level in %s: %q: %w", source, fs.LogLevel, err)
		}
		s.Log.Level = lvl
	}
	if fs.HistoryDB != "" {
		s.History.Path = fs.HistoryDB
	}
	if fs.DefaultOptions != nil {
		opts := make([]OptionArg, 0, len(fs.DefaultOptions))
		for _, raw := range fs.DefaultOptions {
			opt, err := ParseOptionArg(raw)
			if err != nil {
				return fmt.Errorf("invalid default option in %s: %w", source, err)
			}
			opts = append(opts, opt)
		}
		s.Search.DefaultOptions = opts
	}
	return nil
}

func parseTimeout(v string) (time.Duration, error) {
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return d, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Logger builds the application logger at the configured level.
func (s Settings) Logger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "ripgrepy",
		Level:  s.Log.Level,
	})
}

// Apply configures search with the binary, timeout and default options.
// Default options go through the same validation as any other option.
func (s Settings) Apply(search *ripgrep.Search) error {
	if s.Search.Binary != "" {
		search.WithBinary(s.Search.Binary)
	}
	if s.Search.Timeout > 0 {
		search.WithTimeout(s.Search.Timeout)
	}
	for _, opt := range s.Search.DefaultOptions {
		if err := opt.Apply(search); err != nil {
			return err
		}
	}
	return search.Err()
}
