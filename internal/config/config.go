package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// CurrentVersion is the only configuration format version understood.
const CurrentVersion = "1"

// Config is the site configuration file.
type Config struct {
	Version string           `yaml:"version"`
	Site    SiteConfig       `yaml:"site"`
	Theme   ThemeConfig      `yaml:"theme"`
	Social  []SocialLink     `yaml:"social,omitempty"`
	Nav     []nav.Item       `yaml:"nav,omitempty"`
	Sidebar nav.VersionedNav `yaml:"sidebar"`
	Content ContentConfig    `yaml:"content"`
	Server  ServerConfig     `yaml:"server"`
	Watch   WatchConfig      `yaml:"watch"`
	Logging LoggingConfig    `yaml:"logging"`

	// dir is the directory of the loaded file; relative paths resolve against it.
	dir string
}

// SiteConfig holds site-wide metadata.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Lang        string `yaml:"lang,omitempty"`
	EditLink    string `yaml:"edit_link,omitempty"` // pattern containing :path
	LastUpdated bool   `yaml:"last_updated,omitempty"`
}

// ThemeConfig names the code highlighting themes.
type ThemeConfig struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// SocialLink is an icon link in the site header.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// ContentConfig locates the Markdown tree and the site data files.
type ContentConfig struct {
	Dir     string `yaml:"dir"`
	DataDir string `yaml:"data_dir"`
	Types   string `yaml:"types,omitempty"` // API type registry file, relative to data_dir
}

// ServerConfig configures the preview API.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MetricsPath string `yaml:"metrics_path"`
}

// WatchConfig configures reload triggers of the preview server.
type WatchConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Debounce       string `yaml:"debounce"`
	ReloadSchedule string `yaml:"reload_schedule,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Load reads, normalizes, defaults and validates a configuration file.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", slog.String("error", err.Error()))
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.NotFoundError("configuration file not found").
			WithContext("path", configPath).
			Build()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		abs = filepath.Dir(configPath)
	}
	cfg.dir = abs
	return cfg, nil
}

// Parse runs the Load pipeline on in-memory YAML. Relative paths resolve
// against the working directory.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to unmarshal config").
			UserAction().
			Build()
	}

	if cfg.Version != CurrentVersion {
		return nil, derrors.ConfigError(fmt.Sprintf("unsupported configuration version: %q (expected %q)", cfg.Version, CurrentVersion)).Build()
	}

	res := NormalizeConfig(&cfg)
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", slog.String("warning", w))
	}

	applyDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path resolves p against the configuration file directory.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// ContentDir is the absolute-or-working-relative Markdown root.
func (c *Config) ContentDir() string { return c.Path(c.Content.Dir) }

// DataDir is the directory holding the site data YAML files.
func (c *Config) DataDir() string { return c.Path(c.Content.DataDir) }

// Init writes an example configuration file seeded with the Serinus docs.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return derrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryInternal, "failed to marshal example config").Build()
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
