package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// isolated returns a loader that sees no real files or environment
func isolated(t *testing.T, env map[string]string) *Loader {
	dir := t.TempDir()
	return &Loader{
		EnvFile:   filepath.Join(dir, "missing.env"),
		ConfigDir: filepath.Join(dir, "config"),
		Getenv:    envMap(env),
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "ubuntu:GNOME")

	cfg := Default()

	assert.Equal(t, DefaultSearchDirs, cfg.SearchDirs)
	assert.Equal(t, []string{"ubuntu", "GNOME"}, cfg.Desktops)
	assert.Equal(t, 34, cfg.ResultLimit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestSplitDesktops(t *testing.T) {
	assert.Nil(t, SplitDesktops(""))
	assert.Equal(t, []string{"sway"}, SplitDesktops("sway"))
	assert.Equal(t, []string{"KDE", "Plasma"}, SplitDesktops("KDE::Plasma:"))
}

func TestLoader_NoSources(t *testing.T) {
	cfg, err := isolated(t, nil).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	assert.Equal(t, 34, cfg.ResultLimit)
}

func TestLoader_YAMLFile(t *testing.T) {
	l := isolated(t, nil)
	require.NoError(t, os.MkdirAll(l.ConfigDir, 0o755))
	path := writeFile(t, l.ConfigDir, "config.yaml", "search_dirs:\n  - /opt/apps\nresult_limit: 10\nterminal: foot\n")

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, path, cfg.Source)
	assert.Equal(t, []string{"/opt/apps"}, cfg.SearchDirs)
	assert.Equal(t, 10, cfg.ResultLimit)
	assert.Equal(t, "foot", cfg.Terminal)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoader_JSONFile(t *testing.T) {
	l := isolated(t, nil)
	l.Path = writeFile(t, t.TempDir(), "custom.json", `{"workers": 4, "desktops": ["Sway"]}`)

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{"Sway"}, cfg.Desktops)
}

func TestLoader_FileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"MalformedYAML", "bad.yaml", "search_dirs: [unclosed"},
		{"MalformedJSON", "bad.json", "{"},
		{"UnsupportedExtension", "bad.toml", "a = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := isolated(t, nil)
			l.Path = writeFile(t, t.TempDir(), tt.file, tt.content)

			_, err := l.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoader_ExplicitMissingFileFails(t *testing.T) {
	l := isolated(t, nil)
	l.Path = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := l.Load()
	assert.Error(t, err)
}

func TestLoader_ConfigPathFromEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "env.yaml", "result_limit: 5\n")
	l := isolated(t, map[string]string{"PYROXENE_CONFIG": path})

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.ResultLimit)
}

func TestLoader_EnvironmentOverridesFile(t *testing.T) {
	l := isolated(t, map[string]string{
		"PYROXENE_LIMIT":     "7",
		"PYROXENE_DESKTOPS":  "KDE:Plasma",
		"PYROXENE_DIRS":      "/a" + string(os.PathListSeparator) + "/b",
		"PYROXENE_DEBUG":     "true",
		"PYROXENE_TERMINAL":  "alacritty -e",
		"PYROXENE_WORKERS":   "3",
		"PYROXENE_LOG_LEVEL": "info",
	})
	l.Path = writeFile(t, t.TempDir(), "c.yaml", "result_limit: 10\n")

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.ResultLimit)
	assert.Equal(t, []string{"KDE", "Plasma"}, cfg.Desktops)
	assert.Equal(t, []string{"/a", "/b"}, cfg.SearchDirs)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "alacritty -e", cfg.Terminal)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoader_InvalidEnvironmentValue(t *testing.T) {
	l := isolated(t, map[string]string{"PYROXENE_LIMIT": "many", "PYROXENE_DEBUG": "maybe"})

	_, err := l.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PYROXENE_LIMIT")
	assert.Contains(t, err.Error(), "PYROXENE_DEBUG")
}

func TestLoader_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	l := isolated(t, map[string]string{"PYROXENE_LIMIT": "9"})
	l.EnvFile = writeFile(t, t.TempDir(), ".env", "PYROXENE_LIMIT=3\nPYROXENE_TERMINAL=\"kitty -e\"\n")

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, 9, cfg.ResultLimit)
	assert.Equal(t, "kitty -e", cfg.Terminal)
}

func TestConfig_Apply(t *testing.T) {
	cfg := Default()
	cfg.Apply(Overrides{})
	assert.Equal(t, DefaultSearchDirs, cfg.SearchDirs)

	cfg.Apply(Overrides{SearchDirs: []string{"/x"}, Desktops: []string{"Sway"}, Debug: true})

	assert.Equal(t, []string{"/x"}, cfg.SearchDirs)
	assert.Equal(t, []string{"Sway"}, cfg.Desktops)
	assert.True(t, cfg.Debug)
	assert.Equal(t, hclog.Debug, cfg.Level())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"Defaults", func(*Config) {}, false},
		{"NegativeLimit", func(c *Config) { c.ResultLimit = -1 }, true},
		{"ZeroLimitMeansUncapped", func(c *Config) { c.ResultLimit = 0 }, false},
		{"NegativeWorkers", func(c *Config) { c.Workers = -2 }, true},
		{"NegativeCache", func(c *Config) { c.CacheSize = -1 }, true},
		{"UnknownLevel", func(c *Config) { c.LogLevel = "loud" }, true},
		{"TraceLevel", func(c *Config) { c.LogLevel = "trace" }, false},
		{"EmptyTerminal", func(c *Config) { c.Terminal = " " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if tt.expectError {
				assert.Error(t, cfg.Validate())
			} else {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}
