package config

import (
	"fmt"
	"strings"
)

// NormalizationResult captures coercions made by NormalizeConfig.
type NormalizationResult struct{ Warnings []string }

// NormalizeConfig canonicalizes enumerations and trims free-form fields
// before defaults are applied. Unknown enum values are reset so the
// defaults pass fills them in.
func NormalizeConfig(c *Config) *NormalizationResult {
	res := &NormalizationResult{}
	normalizeLogging(&c.Logging, res)
	normalizeTheme(&c.Theme, res)
	normalizeSocial(c.Social, res)
	c.Content.Dir = strings.TrimSpace(c.Content.Dir)
	c.Content.DataDir = strings.TrimSpace(c.Content.DataDir)
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	if mp := strings.TrimSpace(c.Server.MetricsPath); mp != "" && !strings.HasPrefix(mp, "/") {
		res.Warnings = append(res.Warnings, warnChanged("server.metrics_path", c.Server.MetricsPath, "/"+mp))
		c.Server.MetricsPath = "/" + mp
	}
	return res
}

func normalizeLogging(l *LoggingConfig, res *NormalizationResult) {
	if raw := string(l.Level); raw != "" {
		if lvl, ok := logLevels.Lookup(raw); ok {
			if lvl != l.Level {
				res.Warnings = append(res.Warnings, warnChanged("logging.level", l.Level, lvl))
			}
			l.Level = lvl
		} else {
			res.Warnings = append(res.Warnings, warnUnknown("logging.level", raw, string(LogLevelInfo)))
			l.Level = ""
		}
	}
	if raw := string(l.Format); raw != "" {
		if f, ok := logFormats.Lookup(raw); ok {
			if f != l.Format {
				res.Warnings = append(res.Warnings, warnChanged("logging.format", l.Format, f))
			}
			l.Format = f
		} else {
			res.Warnings = append(res.Warnings, warnUnknown("logging.format", raw, string(LogFormatText)))
			l.Format = ""
		}
	}
}

func normalizeTheme(t *ThemeConfig, res *NormalizationResult) {
	for field, v := range map[string]*string{"theme.light": &t.Light, "theme.dark": &t.Dark} {
		folded := strings.ToLower(strings.TrimSpace(*v))
		if folded != *v {
			res.Warnings = append(res.Warnings, warnChanged(field, *v, folded))
			*v = folded
		}
	}
}

func normalizeSocial(links []SocialLink, res *NormalizationResult) {
	for i := range links {
		icon := strings.ToLower(strings.TrimSpace(links[i].Icon))
		if icon != links[i].Icon {
			res.Warnings = append(res.Warnings, warnChanged(fmt.Sprintf("social[%d].icon", i), links[i].Icon, icon))
			links[i].Icon = icon
		}
		links[i].Link = strings.TrimSpace(links[i].Link)
	}
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
