package nav

import "strings"

// Link is a flattened, clickable entry of a tree.
type Link struct {
	Text     string   `json:"text" yaml:"text"`
	Path     string   `json:"path" yaml:"path"`
	External bool     `json:"external,omitempty" yaml:"external,omitempty"`
	Trail    []string `json:"trail,omitempty" yaml:"trail,omitempty"`
}

// Pager holds the neighbours of a page in reading order.
type Pager struct {
	Prev *Link `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next *Link `json:"next,omitempty" yaml:"next,omitempty"`
}

// Links returns every node with a path in document order. A section that
// carries its own link appears before its children.
func (t Tree) Links() []Link {
	var out []Link
	var walk func(nodes []Node, trail []string)
	walk = func(nodes []Node, trail []string) {
		for _, n := range nodes {
			if n.Path != "" {
				out = append(out, Link{Text: n.Text, Path: n.Path, External: n.External, Trail: trail})
			}
			if len(n.Items) > 0 {
				next := make([]string, len(trail), len(trail)+1)
				copy(next, trail)
				walk(n.Items, append(next, n.Text))
			}
		}
	}
	walk(t.Sections, nil)
	return out
}

// Find returns the internal link whose path matches page.
func (t Tree) Find(page string) (Link, bool) {
	want := PagePath(page)
	for _, l := range t.Links() {
		if !l.External && PagePath(l.Path) == want {
			return l, true
		}
	}
	return Link{}, false
}

// Trail returns the section texts from the root down to page, followed by
// the page's own text. ok is false when the page is not in the tree.
func (t Tree) Trail(page string) ([]string, bool) {
	l, ok := t.Find(page)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(l.Trail)+1)
	for _, s := range l.Trail {
		if s != "" {
			out = append(out, s)
		}
	}
	return append(out, l.Text), true
}

// Pager returns the previous and next internal links around page. External
// links are skipped. ok is false when the page is not in the tree.
func (t Tree) Pager(page string) (Pager, bool) {
	var internal []Link
	for _, l := range t.Links() {
		if !l.External {
			internal = append(internal, l)
		}
	}
	want := PagePath(page)
	for i, l := range internal {
		if PagePath(l.Path) != want {
			continue
		}
		var p Pager
		if i > 0 {
			prev := internal[i-1]
			p.Prev = &prev
		}
		if i+1 < len(internal) {
			next := internal[i+1]
			p.Next = &next
		}
		return p, true
	}
	return Pager{}, false
}

// Stats counts sections and links across all versions.
type Stats struct {
	Versions int `json:"versions"`
	Sections int `json:"sections"`
	Links    int `json:"links"`
	External int `json:"external"`
}

// Stats summarizes the resolved navigation.
func (r *ResolvedNav) Stats() Stats {
	s := Stats{Versions: len(r.Versions)}
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if len(n.Items) > 0 {
				s.Sections++
				walk(n.Items)
			}
			if n.Path == "" {
				continue
			}
			s.Links++
			if n.External {
				s.External++
			}
		}
	}
	for _, t := range r.Versions {
		walk(t.Sections)
	}
	return s
}

// PagePath reduces a link to the page it addresses: query and fragment are
// dropped, as are .md and .html suffixes. "/guide/index" becomes "/guide/".
func PagePath(link string) string {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	link = strings.TrimSuffix(link, ".md")
	link = strings.TrimSuffix(link, ".html")
	if link == "index" || strings.HasSuffix(link, "/index") {
		link = strings.TrimSuffix(link, "index")
	}
	return ensureLeadingSlash(link)
}
