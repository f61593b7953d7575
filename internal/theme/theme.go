// Package theme holds the syntax-highlighting color tables used for code
// samples. Built-in themes are embedded YAML and exported as VS Code/shiki
// theme JSON.
package theme

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

const (
	// Parchment is the default light theme.
	Parchment = "serinus-parchment"
	// Nocturne is the default dark theme.
	Nocturne = "serinus-nocturne"
)

// ErrUnknownTheme is returned by Get for unregistered names.
var ErrUnknownTheme = derrors.NotFoundError("unknown theme").Build()

// TokenColor styles every scope in Scope.
type TokenColor struct {
	Scope      []string `yaml:"scope"`
	Foreground string   `yaml:"foreground"`
	FontStyle  string   `yaml:"font_style,omitempty"`
}

// Theme is a TextMate color theme.
type Theme struct {
	Name        string            `yaml:"name"`
	Type        string            `yaml:"type"`
	Colors      map[string]string `yaml:"colors"`
	TokenColors []TokenColor      `yaml:"token_colors"`
}

// Style is the resolved styling of a scope.
type Style struct {
	Scope      string `json:"scope"`
	Foreground string `json:"foreground"`
	FontStyle  string `json:"fontStyle,omitempty"`
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

var builtins = mustLoadBuiltins()

func mustLoadBuiltins() map[string]Theme {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(err)
	}
	out := make(map[string]Theme, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(err)
		}
		th, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("builtin theme %s: %v", e.Name(), err))
		}
		out[th.Name] = th
	}
	return out
}

// Parse decodes and validates a YAML theme definition.
func Parse(data []byte) (Theme, error) {
	var th Theme
	if err := yaml.Unmarshal(data, &th); err != nil {
		return Theme{}, derrors.WrapError(err, derrors.CategoryValidation, "invalid theme definition").Build()
	}
	if th.Name == "" {
		return Theme{}, derrors.ValidationError("theme name is required").Build()
	}
	if th.Type != "light" && th.Type != "dark" {
		return Theme{}, derrors.ValidationError("theme type must be light or dark").
			WithContext("theme", th.Name).
			WithContext("type", th.Type).
			Build()
	}
	for i, tc := range th.TokenColors {
		if len(tc.Scope) == 0 {
			return Theme{}, derrors.ValidationError("token color without scope").
				WithContext("theme", th.Name).
				WithContext("index", i).
				Build()
		}
	}
	return th, nil
}

// Get returns the built-in theme registered under name.
func Get(name string) (Theme, error) {
	th, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, ErrUnknownTheme.WithContext("theme", name)
	}
	return th, nil
}

// Names lists the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// StyleFor resolves scope to the most specific rule. A rule selector
// matches when it equals the scope or is a prefix ending on a dot
// boundary; the longest matching selector wins and earlier rules win ties.
// The editor foreground is used when nothing matches.
func (th Theme) StyleFor(scope string) Style {
	best := Style{Foreground: th.Colors["editor.foreground"]}
	bestLen := -1
	for _, tc := range th.TokenColors {
		for _, sel := range tc.Scope {
			if !scopeMatches(sel, scope) || len(sel) <= bestLen {
				continue
			}
			bestLen = len(sel)
			best = Style{Scope: sel, Foreground: tc.Foreground, FontStyle: tc.FontStyle}
		}
	}
	return best
}

func scopeMatches(selector, scope string) bool {
	if selector == scope {
		return true
	}
	return strings.HasPrefix(scope, selector+".")
}

type jsonTokenColor struct {
	Scope    []string          `json:"scope"`
	Settings map[string]string `json:"settings"`
}

type jsonTheme struct {
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Colors      map[string]string `json:"colors"`
	TokenColors []jsonTokenColor  `json:"tokenColors"`
}

// JSON exports the theme in the VS Code/shiki theme format.
func (th Theme) JSON() ([]byte, error) {
	out := jsonTheme{Name: th.Name, Type: th.Type, Colors: th.Colors}
	for _, tc := range th.TokenColors {
		settings := map[string]string{"foreground": tc.Foreground}
		if tc.FontStyle != "" {
			settings["fontStyle"] = tc.FontStyle
		}
		out.TokenColors = append(out.TokenColors, jsonTokenColor{Scope: tc.Scope, Settings: settings})
	}
	return json.MarshalIndent(out, "", "  ")
}
