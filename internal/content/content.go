package content

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// File names inside the data directory.
const (
	BlogFile       = "blog.yaml"
	RoadmapFile    = "roadmap.yaml"
	SpotlightsFile = "spotlights.yaml"
	EcosystemFile  = "ecosystem.yaml"
)

// Data is the complete site data set.
type Data struct {
	Blog       Blog        `json:"blog"`
	Roadmap    Roadmap     `json:"roadmap"`
	Spotlights []Spotlight `json:"spotlights"`
	Plugins    []Plugin    `json:"plugins"`
}

// Spotlight is a homepage card.
type Spotlight struct {
	Title        string `yaml:"title" json:"title"`
	Subtitle     string `yaml:"subtitle" json:"subtitle"`
	Src          string `yaml:"src,omitempty" json:"src,omitempty"`
	Alt          string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Color        string `yaml:"color" json:"color"`
	FeatherColor string `yaml:"feather_color,omitempty" json:"featherColor,omitempty"`
	TextColor    string `yaml:"text_color" json:"textColor"`
	Href         string `yaml:"href" json:"href"`
	CTA          string `yaml:"cta" json:"cta"`
}

// Plugin is an entry of the ecosystem page.
type Plugin struct {
	Title string `yaml:"title" json:"title"`
	Pub   string `yaml:"pub" json:"pub"`
	Desc  string `yaml:"desc" json:"desc"`
	Link  string `yaml:"link" json:"link"`
	Slot  string `yaml:"slot" json:"slot"`
}

// Ref is an href found in site data, with a label locating it.
type Ref struct {
	Source string
	Href   string
}

// Load reads every data file in dir and validates it.
func Load(dir string) (*Data, error) {
	d := &Data{}
	if err := readYAML(dir, BlogFile, &d.Blog); err != nil {
		return nil, err
	}
	if err := readYAML(dir, RoadmapFile, &d.Roadmap); err != nil {
		return nil, err
	}
	if err := readYAML(dir, SpotlightsFile, &d.Spotlights); err != nil {
		return nil, err
	}
	if err := readYAML(dir, EcosystemFile, &d.Plugins); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate checks cross references and required fields of every collection.
func (d *Data) Validate() error {
	var errs []error
	errs = append(errs, d.Blog.validate()...)
	errs = append(errs, d.Roadmap.validate()...)
	for i, s := range d.Spotlights {
		if strings.TrimSpace(s.Href) == "" {
			errs = append(errs, invalid(SpotlightsFile, i, "href", "href is required"))
		}
	}
	seen := make(map[string]bool, len(d.Plugins))
	for i, p := range d.Plugins {
		if strings.TrimSpace(p.Link) == "" {
			errs = append(errs, invalid(EcosystemFile, i, "link", "link is required"))
		}
		if p.Slot != "" && seen[p.Slot] {
			errs = append(errs, invalid(EcosystemFile, i, "slot", "duplicate slot "+p.Slot))
		}
		seen[p.Slot] = true
	}
	return errors.Join(errs...)
}

// Refs lists every href of posts, spotlights and plugins.
func (d *Data) Refs() []Ref {
	var refs []Ref
	for _, p := range d.Blog.Posts {
		refs = append(refs, Ref{Source: BlogFile + ": " + p.Title, Href: p.Href})
	}
	for _, s := range d.Spotlights {
		refs = append(refs, Ref{Source: SpotlightsFile + ": " + s.Title, Href: s.Href})
	}
	for _, p := range d.Plugins {
		refs = append(refs, Ref{Source: EcosystemFile + ": " + p.Title, Href: p.Link})
	}
	return refs
}

func readYAML(dir, name string, out any) error {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read data file").
			WithContext("file", path).
			Build()
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return derrors.WrapError(err, derrors.CategoryContent, "invalid data file").
			UserAction().
			WithContext("file", path).
			Build()
	}
	return nil
}

func invalid(file string, index int, field, msg string) error {
	return derrors.ContentError(msg).
		WithContext("file", file).
		WithContext("index", index).
		WithContext("field", field).
		Build()
}
