package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable the launcher reads
const EnvPrefix = "PYROXENE_"

// Loader resolves configuration from file, .env and environment
type Loader struct {
	// Path is an explicit config file. Empty means $PYROXENE_CONFIG, then the
	// default locations under the user config directory.
	Path string

	// EnvFile is the .env file to read. Empty means ".env" in the working directory.
	EnvFile string

	// Getenv looks up process environment; defaults to os.Getenv
	Getenv func(string) string

	// ConfigDir overrides the user config directory
	ConfigDir string
}

// Load loads configuration using the default loader and an optional explicit file
func Load(path string) (*Config, error) {
	return (&Loader{Path: path}).Load()
}

// Load builds the configuration. Precedence from low to high: defaults,
// config file, .env file, environment.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	dotenv, err := l.readDotEnv()
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := l.getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	path, explicit := l.Path, l.Path != ""
	if !explicit {
		if p := lookup(EnvPrefix + "CONFIG"); p != "" {
			path, explicit = p, true
		}
	}
	if path == "" {
		path = l.findDefault()
	}

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		} else {
			cfg.Source = path
		}
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) getenv(key string) string {
	if l.Getenv != nil {
		return l.Getenv(key)
	}
	return os.Getenv(key)
}

// readDotEnv reads the .env file without touching the process environment
func (l *Loader) readDotEnv() (map[string]string, error) {
	path := l.EnvFile
	if path == "" {
		path = ".env"
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

// findDefault returns the first existing config file in the config directory
func (l *Loader) findDefault() string {
	dir := l.ConfigDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(base, "pyroxene")
	}

	for _, name := range []string{"config.yaml", "config.yml", "config.json"} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// loadFile decodes a JSON or YAML config file onto cfg
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case ".json", "":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file format: %s", path)
	}
	return nil
}

// applyEnv overlays PYROXENE_* variables onto cfg
func applyEnv(cfg *Config, lookup func(string) string) error {
	var errs []error
	add := func(key string, convert func(string) error) {
		if v := lookup(EnvPrefix + key); v != "" {
			if err := convert(v); err != nil {
				errs = append(errs, fmt.Errorf("invalid %s%s: %w", EnvPrefix, key, err))
			}
		}
	}
	toInt := func(dst *int) func(string) error {
		return func(s string) error {
			i, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			*dst = i
			return nil
		}
	}

	add("DIRS", func(s string) error { cfg.SearchDirs = filepath.SplitList(s); return nil })
	add("DESKTOPS", func(s string) error { cfg.Desktops = SplitDesktops(s); return nil })
	add("TERMINAL", func(s string) error { cfg.Terminal = s; return nil })
	add("LIMIT", toInt(&cfg.ResultLimit))
	add("WORKERS", toInt(&cfg.Workers))
	add("CACHE_SIZE", toInt(&cfg.CacheSize))
	add("LOG_LEVEL", func(s string) error { cfg.LogLevel = s; return nil })
	add("DEBUG", func(s string) error {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		cfg.Debug = b
		return nil
	})

	return errors.Join(errs...)
}
