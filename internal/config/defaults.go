package config

import "git.home.luguber.info/inful/docnav/internal/theme"

const (
	defaultAddr        = ":4173"
	defaultMetricsPath = "/metrics"
	defaultDebounce    = "300ms"
	defaultContentDir  = "."
	defaultDataDir     = "data"
	defaultTypesFile   = "types.yaml"
	defaultLang        = "en-US"
)

func applyDefaults(c *Config) {
	if c.Site.Lang == "" {
		c.Site.Lang = defaultLang
	}
	if c.Theme.Light == "" {
		c.Theme.Light = theme.Parchment
	}
	if c.Theme.Dark == "" {
		c.Theme.Dark = theme.Nocturne
	}
	if c.Content.Dir == "" {
		c.Content.Dir = defaultContentDir
	}
	if c.Content.DataDir == "" {
		c.Content.DataDir = defaultDataDir
	}
	if c.Content.Types == "" {
		c.Content.Types = defaultTypesFile
	}
	if c.Server.Addr == "" {
		c.Server.Addr = defaultAddr
	}
	if c.Server.MetricsPath == "" {
		c.Server.MetricsPath = defaultMetricsPath
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = defaultDebounce
	}
	if c.Logging.Level == "" {
		c.Logging.Level = LogLevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = LogFormatText
	}
}
