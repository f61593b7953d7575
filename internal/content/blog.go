package content

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// DateLayout is the display format of post dates. Days may be written
// with one or two digits.
const (
	DateLayout  = "02 Jan 2006"
	parseLayout = "2 Jan 2006"
)

// Date is a calendar date written as "03 Feb 2026".
type Date struct{ time.Time }

// ParseDate parses a post date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(node.Value)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryContent, "invalid date").
			WithContext("line", node.Line).
			WithContext("value", node.Value).
			Build()
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) { return d.String(), nil }

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

// Author is a blog author.
type Author struct {
	Avatar  string `yaml:"avatar" json:"avatar"`
	Twitter string `yaml:"twitter,omitempty" json:"twitter,omitempty"`
}

// Post is a blog entry.
type Post struct {
	Title       string   `yaml:"title" json:"title"`
	Src         string   `yaml:"src,omitempty" json:"src,omitempty"`
	Alt         string   `yaml:"alt,omitempty" json:"alt,omitempty"`
	Author      string   `yaml:"author" json:"author"`
	Desc        string   `yaml:"desc,omitempty" json:"desc,omitempty"`
	Date        Date     `yaml:"date" json:"date"`
	LastUpdated Date     `yaml:"last_updated,omitempty" json:"lastUpdated"`
	Shadow      bool     `yaml:"shadow,omitempty" json:"shadow,omitempty"`
	Tags        []string `yaml:"tags" json:"tags"`
	Href        string   `yaml:"href" json:"href"`
}

// Blog holds the authors and posts of the site blog.
type Blog struct {
	Authors map[string]Author `yaml:"authors" json:"authors"`
	Posts   []Post            `yaml:"posts" json:"posts"`
}

// Tag is a post tag with its display label and usage count.
type Tag struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func (b Blog) validate() []error {
	var errs []error
	for i, p := range b.Posts {
		if strings.TrimSpace(p.Title) == "" {
			errs = append(errs, invalid(BlogFile, i, "title", "title is required"))
		}
		if _, ok := b.Authors[p.Author]; !ok {
			errs = append(errs, invalid(BlogFile, i, "author", "unknown author "+p.Author))
		}
		if p.Date.IsZero() {
			errs = append(errs, invalid(BlogFile, i, "date", "date is required"))
		}
		if strings.TrimSpace(p.Href) == "" {
			errs = append(errs, invalid(BlogFile, i, "href", "href is required"))
		}
	}
	return errs
}

// SortedPosts returns the posts newest first. Posts sharing a date keep
// their file order.
func (b Blog) SortedPosts() []Post {
	out := slices.Clone(b.Posts)
	slices.SortStableFunc(out, func(x, y Post) int {
		return y.Date.Compare(x.Date.Time)
	})
	return out
}

// PostsByTag returns the posts carrying tag, newest first. Matching
// ignores case.
func (b Blog) PostsByTag(tag string) []Post {
	var out []Post
	for _, p := range b.SortedPosts() {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// TagLabel turns a tag slug into its display label.
func TagLabel(tag string) string {
	return cases.Title(language.English).String(strings.NewReplacer("_", " ", "-", " ").Replace(tag))
}

// Tags lists the distinct tags in first-use order of the sorted posts.
func (b Blog) Tags() []Tag {
	var tags []Tag
	index := make(map[string]int)
	for _, p := range b.SortedPosts() {
		for _, t := range p.Tags {
			key := strings.ToLower(t)
			if i, ok := index[key]; ok {
				tags[i].Count++
				continue
			}
			index[key] = len(tags)
			tags = append(tags, Tag{Name: key, Label: TagLabel(key), Count: 1})
		}
	}
	return tags
}
