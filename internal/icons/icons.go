// Package icons is the static icon table of the site: every identifier maps
// to a fixed vector drawing that Render turns into SVG markup.
package icons

import (
	"fmt"
	"html"
	"slices"
	"sort"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Mode selects how an icon is painted.
type Mode int

const (
	// Stroke icons are outlined with currentColor, 2px round joins.
	Stroke Mode = iota
	// Fill icons are solid currentColor shapes.
	Fill
)

// Element is one SVG child element.
type Element struct {
	Tag   string            // path, circle or polygon
	Attrs map[string]string // d, cx/cy/r, points, ...
}

// Icon is a fixed vector drawing.
type Icon struct {
	Name     string
	ViewBox  string
	Mode     Mode
	Elements []Element
}

// DefaultClass is applied when Render is called without a class.
const DefaultClass = "w-5 h-5"

// ErrUnknownIcon is returned by Get and Render for unregistered names.
var ErrUnknownIcon = derrors.NotFoundError("unknown icon").Build()

// Get returns the icon registered under name. Lookup ignores case and
// accepts both "GithubIcon" and "github" spellings.
func Get(name string) (Icon, error) {
	if ic, ok := registry[canonical(name)]; ok {
		return ic, nil
	}
	return Icon{}, ErrUnknownIcon.WithContext("icon", name)
}

// Names returns every registered icon name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, ic := range registry {
		names = append(names, ic.Name)
	}
	sort.Strings(names)
	return names
}

// Render returns the SVG markup of the named icon.
func Render(name, class string) (string, error) {
	ic, err := Get(name)
	if err != nil {
		return "", err
	}
	return ic.SVG(class), nil
}

// SVG renders the icon. An empty class uses DefaultClass.
func (ic Icon) SVG(class string) string {
	if class == "" {
		class = DefaultClass
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s"`, html.EscapeString(ic.ViewBox))
	switch ic.Mode {
	case Fill:
		b.WriteString(` fill="currentColor"`)
	default:
		b.WriteString(` fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"`)
	}
	fmt.Fprintf(&b, ` class="%s">`, html.EscapeString(class))
	for _, el := range ic.Elements {
		b.WriteString("<" + el.Tag)
		keys := make([]string, 0, len(el.Attrs))
		for k := range el.Attrs {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, ` %s="%s"`, k, html.EscapeString(el.Attrs[k]))
		}
		b.WriteString("/>")
	}
	b.WriteString("</svg>")
	return b.String()
}

// Social maps social link identifiers to icon names.
var social = map[string]string{
	"github":   "GithubIcon",
	"twitter":  "XSocialIcon",
	"x":        "XSocialIcon",
	"discord":  "DiscordIcon",
	"linkedin": "LinkedInSocialIcon",
}

// ForSocial returns the icon used for a social link identifier.
func ForSocial(id string) (Icon, error) {
	name, ok := social[strings.ToLower(id)]
	if !ok {
		return Icon{}, ErrUnknownIcon.WithContext("icon", id)
	}
	return Get(name)
}

// SocialIDs lists the supported social link identifiers.
func SocialIDs() []string {
	ids := make([]string, 0, len(social))
	for id := range social {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func canonical(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "icon")
	return strings.NewReplacer("-", "", "_", "").Replace(n)
}

var registry = func() map[string]Icon {
	m := make(map[string]Icon, len(table))
	for _, ic := range table {
		m[canonical(ic.Name)] = ic
	}
	return m
}()

func path(d string) Element { return Element{Tag: "path", Attrs: map[string]string{"d": d}} }

func circle(cx, cy, r string) Element {
	return Element{Tag: "circle", Attrs: map[string]string{"cx": cx, "cy": cy, "r": r}}
}

func polygon(points string) Element {
	return Element{Tag: "polygon", Attrs: map[string]string{"points": points}}
}
