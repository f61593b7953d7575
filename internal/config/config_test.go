package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

const minimalConfig = `version: "1"
sidebar:
  /next/:
    - text: Introduction
      items:
        - text: Quick Start
          link: /next/quick_start
  /:
    - text: Introduction
      items:
        - text: Quick Start
          link: /quick_start
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, minimalConfig+"site:\n  title: Serinus\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Serinus", cfg.Site.Title)
	assert.Equal(t, "en-US", cfg.Site.Lang)
	assert.Equal(t, "serinus-parchment", cfg.Theme.Light)
	assert.Equal(t, "serinus-nocturne", cfg.Theme.Dark)
	assert.Equal(t, ":4173", cfg.Server.Addr)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Equal(t, []string{"/next/", "/"}, cfg.Sidebar.Keys())

	dir := filepath.Dir(path)
	assert.Equal(t, dir, cfg.ContentDir())
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir())
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCNAV_TEST_TITLE", "Serinus Next")
	content := `version: "1"
site:
  title: ${DOCNAV_TEST_TITLE}
sidebar:
  - text: Home
    link: /
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)
	assert.Equal(t, "Serinus Next", cfg.Site.Title)
	assert.Equal(t, []string{nav.DefaultVersion}, cfg.Sidebar.Keys())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	_, err := Parse([]byte("version: \"2.0\"\nsidebar: []\n"))
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	assert.Contains(t, err.Error(), "unsupported configuration version")
}

func TestNormalizationCanonicalizesEnums(t *testing.T) {
	content := minimalConfig + `logging:
  level: " WARNING "
  format: JSON
theme:
  light: Serinus-Parchment
social:
  - icon: GitHub
    link: https://github.com/francescovallone/serinus
server:
  metrics_path: prom
`
	cfg, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
	assert.Equal(t, "serinus-parchment", cfg.Theme.Light)
	assert.Equal(t, "github", cfg.Social[0].Icon)
	assert.Equal(t, "/prom", cfg.Server.MetricsPath)
}

func TestNormalizeUnknownLogLevelFallsBackToDefault(t *testing.T) {
	cfg := &Config{Logging: LoggingConfig{Level: "loud", Format: "xml"}}
	res := NormalizeConfig(cfg)
	require.Len(t, res.Warnings, 2)
	applyDefaults(cfg)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		extra string
		field string
	}{
		{"unknown social icon", "social:\n  - icon: myspace\n    link: https://myspace.com/x\n", "social[0].icon"},
		{"relative social link", "social:\n  - icon: github\n    link: github.com/serinus\n", "social[0].link"},
		{"mailto social link", "social:\n  - icon: discord\n    link: mailto:a@b.c\n", "social[0].link"},
		{"unknown theme", "theme:\n  dark: monokai\n", "theme.dark"},
		{"both themes unknown", "theme:\n  light: solarized\n  dark: monokai\n", "theme.light"},
		{"bad debounce", "watch:\n  debounce: soon\n", "watch.debounce"},
		{"negative reload", "watch:\n  reload_schedule: -5m\n", "watch.reload_schedule"},
		{"bad base url", "site:\n  title: x\n  base_url: ftp://serinus.app\n", "site.base_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(minimalConfig + tt.extra))
			require.Error(t, err)
			ce, ok := derrors.AsClassified(err)
			require.True(t, ok)
			assert.Equal(t, derrors.CategoryConfig, ce.Category())
			field, _ := ce.Context().GetString("field")
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestValidationRejectsEmptySidebar(t *testing.T) {
	_, err := Parse([]byte("version: \"1\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sidebar must define at least one version")
}

func TestValidationSurfacesNavigationErrors(t *testing.T) {
	content := `version: "1"
sidebar:
  /:
    - text: Guide
      base: /guide/
      items:
        - text: Modules
          link: modules
        - text: Modules again
          link: modules
        - text: Dead
`
	_, err := Parse([]byte(content))
	require.Error(t, err)
	assert.ErrorIs(t, err, nav.ErrInvalidNavigation)

	var ce *nav.ConfigurationError
	require.ErrorAs(t, err, &ce)
}

func TestValidationChecksTopNav(t *testing.T) {
	_, err := Parse([]byte(minimalConfig + "nav:\n  - text: Docs\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, nav.ErrInvalidNavigation)
}

func TestWatchDurations(t *testing.T) {
	w := WatchConfig{Debounce: "250ms", ReloadSchedule: "10m"}
	assert.Equal(t, "250ms", w.DebounceDuration().String())
	assert.Equal(t, "10m0s", w.ReloadInterval().String())
	assert.Zero(t, WatchConfig{Debounce: "1s"}.ReloadInterval())
}

func TestInitWritesLoadableExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Serinus", cfg.Site.Title)
	assert.Equal(t, []string{"/next/", "/"}, cfg.Sidebar.Keys())
	assert.Len(t, cfg.Social, 3)

	err = Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Init(path, true))
}
