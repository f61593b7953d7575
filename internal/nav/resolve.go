package nav

import (
	"net/url"
	"slices"
	"strings"
)

// Node is a resolved navigation item. Path is absolute for internal links,
// verbatim for external links and empty for plain headings.
type Node struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	External  bool   `json:"external,omitempty" yaml:"external,omitempty"`
	Collapsed *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Items     []Node `json:"items,omitempty" yaml:"items,omitempty"`
}

// Tree is the resolved form of one version.
type Tree struct {
	Key      string `json:"key" yaml:"key"`
	Sections []Node `json:"sections" yaml:"sections"`
}

// ResolvedNav holds every resolved version in authoring order.
type ResolvedNav struct {
	Versions []Tree `json:"versions" yaml:"versions"`
}

// Resolve computes absolute paths for every entry of every version.
//
// A link resolves to the concatenation of all enclosing bases followed by
// the link itself; a missing leading slash is added to bases and links and
// repeated slashes collapse. Two internal links addressing the same page are
// duplicates even when spelled differently ("modules" and "modules.md").
// External links (with a URL scheme or starting with //) are kept as written
// and do not take part in collision checks. All problems across all versions are reported in one
// error wrapping ErrInvalidNavigation.
func Resolve(v VersionedNav) (*ResolvedNav, error) {
	out := &ResolvedNav{Versions: make([]Tree, 0, len(v))}
	var problems []error
	for _, ver := range v {
		tree, errs := resolveTree(ver.Key, ver.Sections)
		problems = append(problems, errs...)
		out.Versions = append(out.Versions, tree)
	}
	if len(problems) > 0 {
		return nil, invalid(problems)
	}
	return out, nil
}

// ResolveTree resolves a single section list under the given key. It is used
// for navigation that is not versioned, such as the top bar.
func ResolveTree(key string, sections []Item) (Tree, error) {
	tree, problems := resolveTree(key, sections)
	if len(problems) > 0 {
		return Tree{}, invalid(problems)
	}
	return tree, nil
}

func resolveTree(key string, sections []Item) (Tree, []error) {
	r := &resolver{version: key, seen: make(map[string][]string)}
	if !strings.HasPrefix(key, "/") {
		r.problems = append(r.problems, &ConfigurationError{Version: key, Reason: ReasonBadVersionKey})
	}
	tree := Tree{Key: key, Sections: r.items(sections, "", nil)}
	return tree, r.problems
}

type resolver struct {
	version  string
	seen     map[string][]string
	problems []error
}

func (r *resolver) items(items []Item, base string, trail []string) []Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(items))
	for _, it := range items {
		nodes = append(nodes, r.item(it, base, trail))
	}
	return nodes
}

func (r *resolver) item(it Item, base string, trail []string) Node {
	if it.Base != "" {
		base = ensureLeadingSlash(joinPath(base, it.Base))
	}
	n := Node{Text: it.Text, Collapsed: it.Collapsed}

	if it.Link != "" {
		if IsExternal(it.Link) {
			n.Path, n.External = it.Link, true
		} else {
			n.Path = ensureLeadingSlash(joinPath(base, it.Link))
			r.claim(n.Path, trail, it.Text)
		}
	}

	switch {
	case it.IsSection():
		n.Items = r.items(it.Items, base, append(slices.Clip(trail), it.Text))
	case it.Link == "":
		r.problems = append(r.problems, &ConfigurationError{
			Version: r.version,
			Trail:   slices.Clone(trail),
			Text:    it.Text,
			Reason:  ReasonDeadEntry,
		})
	}
	return n
}

// claim records the page a link addresses. Spellings that reach the same
// page ("modules", "modules.md", "guide/index") collide; distinct fragments
// of one page do not.
func (r *resolver) claim(path string, trail []string, text string) {
	here := append(slices.Clone(trail), text)
	key := PagePath(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		key += path[i:]
	}
	if first, dup := r.seen[key]; dup {
		r.problems = append(r.problems, &ConfigurationError{
			Version:    r.version,
			Trail:      slices.Clone(trail),
			Text:       text,
			Path:       path,
			Reason:     ReasonDuplicatePath,
			FirstTrail: first,
		})
		return
	}
	r.seen[key] = here
}

// joinPath concatenates a and b and collapses repeated slashes in the
// path part of the result.
func joinPath(a, b string) string {
	p := a + b
	end := len(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		end = i
	}
	if !strings.Contains(p[:end], "//") {
		return p
	}
	var sb strings.Builder
	sb.Grow(len(p))
	for i := 0; i < end; i++ {
		if p[i] == '/' && i > 0 && p[i-1] == '/' {
			continue
		}
		sb.WriteByte(p[i])
	}
	sb.WriteString(p[end:])
	return sb.String()
}

func ensureLeadingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// IsExternal reports whether link leaves the site: it has a URL scheme
// (https:, mailto:, ...) or is protocol-relative.
func IsExternal(link string) bool {
	if strings.HasPrefix(link, "//") {
		return true
	}
	u, err := url.Parse(link)
	return err == nil && u.Scheme != ""
}
