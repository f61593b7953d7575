package config

import (
	"fmt"
	"net/url"
	"time"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/icons"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/theme"
)

// ValidateConfig checks a normalized, defaulted configuration.
// Navigation problems are returned as nav configuration errors.
func ValidateConfig(cfg *Config) error {
	return newConfigurationValidator(cfg).validate()
}

type configurationValidator struct {
	config *Config
}

func newConfigurationValidator(config *Config) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	for _, check := range []func() error{
		cv.validateSite,
		cv.validateTheme,
		cv.validateSocial,
		cv.validateWatch,
		cv.validateLogging,
		cv.validateNavigation,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateSite() error {
	if base := cv.config.Site.BaseURL; base != "" {
		if err := checkHTTPURL(base); err != nil {
			return invalidField("site.base_url", base, err)
		}
	}
	return nil
}

func (cv *configurationValidator) validateTheme() error {
	fields := []struct{ field, name string }{
		{"theme.light", cv.config.Theme.Light},
		{"theme.dark", cv.config.Theme.Dark},
	}
	for _, f := range fields {
		if _, err := theme.Get(f.name); err != nil {
			return invalidField(f.field, f.name, err)
		}
	}
	return nil
}

func (cv *configurationValidator) validateSocial() error {
	for i, s := range cv.config.Social {
		field := fmt.Sprintf("social[%d]", i)
		if _, err := icons.ForSocial(s.Icon); err != nil {
			return invalidField(field+".icon", s.Icon, err)
		}
		if err := checkHTTPURL(s.Link); err != nil {
			return invalidField(field+".link", s.Link, err)
		}
	}
	return nil
}

func (cv *configurationValidator) validateWatch() error {
	w := cv.config.Watch
	if _, err := parsePositiveDuration(w.Debounce); err != nil {
		return invalidField("watch.debounce", w.Debounce, err)
	}
	if w.ReloadSchedule != "" {
		if _, err := parsePositiveDuration(w.ReloadSchedule); err != nil {
			return invalidField("watch.reload_schedule", w.ReloadSchedule, err)
		}
	}
	return nil
}

func (cv *configurationValidator) validateLogging() error {
	if _, err := logLevels.Parse(string(cv.config.Logging.Level)); err != nil {
		return invalidField("logging.level", string(cv.config.Logging.Level), err)
	}
	if _, err := logFormats.Parse(string(cv.config.Logging.Format)); err != nil {
		return invalidField("logging.format", string(cv.config.Logging.Format), err)
	}
	return nil
}

func (cv *configurationValidator) validateNavigation() error {
	if len(cv.config.Sidebar) == 0 {
		return derrors.ConfigError("sidebar must define at least one version").Build()
	}
	if _, err := nav.Resolve(cv.config.Sidebar); err != nil {
		return err
	}
	if len(cv.config.Nav) > 0 {
		if _, err := nav.ResolveTree(nav.DefaultVersion, cv.config.Nav); err != nil {
			return err
		}
	}
	return nil
}

// DebounceDuration returns the parsed watch debounce.
func (w WatchConfig) DebounceDuration() time.Duration {
	d, _ := parsePositiveDuration(w.Debounce)
	return d
}

// ReloadInterval returns the periodic reload interval, zero when disabled.
func (w WatchConfig) ReloadInterval() time.Duration {
	if w.ReloadSchedule == "" {
		return 0
	}
	d, _ := parsePositiveDuration(w.ReloadSchedule)
	return d
}

func parsePositiveDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", s)
	}
	return d, nil
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func invalidField(field, value string, cause error) error {
	return derrors.WrapError(cause, derrors.CategoryConfig, "invalid "+field).
		UserAction().
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
