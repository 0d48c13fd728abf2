package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"pyroxene.dev/launcher/internal/core/ranking"
)

// Config holds the effective launcher configuration
type Config struct {
	SearchDirs  []string `json:"search_dirs" yaml:"search_dirs"`
	Desktops    []string `json:"desktops" yaml:"desktops"`
	Terminal    string   `json:"terminal" yaml:"terminal"`
	ResultLimit int      `json:"result_limit" yaml:"result_limit"`
	Workers     int      `json:"workers" yaml:"workers"`
	LogLevel    string   `json:"log_level" yaml:"log_level"`
	Debug       bool     `json:"debug" yaml:"debug"`
	CacheSize   int      `json:"cache_size" yaml:"cache_size"`

	// Source is the config file that was applied, empty when none was found
	Source string `json:"-" yaml:"-"`
}

// Overrides carries values given on the command line
type Overrides struct {
	SearchDirs []string
	Desktops   []string
	Debug      bool
}

// DefaultSearchDirs are scanned when no directories are configured
var DefaultSearchDirs = []string{
	"/usr/share/applications",
	"~/.local/share/applications",
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		SearchDirs:  append([]string(nil), DefaultSearchDirs...),
		Desktops:    SplitDesktops(os.Getenv("XDG_CURRENT_DESKTOP")),
		Terminal:    "xterm -e",
		ResultLimit: ranking.DefaultLimit,
		Workers:     0,
		LogLevel:    "warn",
		CacheSize:   128,
	}
}

// SplitDesktops splits a colon separated desktop list such as XDG_CURRENT_DESKTOP
func SplitDesktops(value string) []string {
	var out []string
	for _, d := range strings.Split(value, ":") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// Apply merges command line overrides; only set values replace config
func (c *Config) Apply(o Overrides) {
	if len(o.SearchDirs) > 0 {
		c.SearchDirs = append([]string(nil), o.SearchDirs...)
	}
	if len(o.Desktops) > 0 {
		c.Desktops = append([]string(nil), o.Desktops...)
	}
	if o.Debug {
		c.Debug = true
		c.LogLevel = "debug"
	}
}

// Level returns the log level, forcing debug when Debug is set
func (c *Config) Level() hclog.Level {
	if c.Debug {
		return hclog.Debug
	}
	return hclog.LevelFromString(c.LogLevel)
}

// Validate checks the configuration for values the launcher cannot use
func (c *Config) Validate() error {
	if c.ResultLimit < 0 {
		return fmt.Errorf("result_limit must not be negative, got %d", c.ResultLimit)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if strings.TrimSpace(c.Terminal) == "" {
		return fmt.Errorf("terminal command must not be empty")
	}
	return nil
}
