// Package linkcheck cross-checks the resolved navigation, the Markdown pages
// and the site data against each other.
//
// Four rules run:
//
//   - nav-target: a sidebar or top-bar link addresses no page (error)
//   - page-link: a page links to an internal path with no page (error)
//   - content-ref: a blog post, spotlight or plugin href addresses no page (error)
//   - orphan-page: a page is reachable from no navigation or data entry (warning)
//
// Links that name a static asset (any extension other than .md or .html)
// and external links are not checked.
package linkcheck

import (
	"path"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/content"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/pages"
)

// Input is everything a check looks at. Nil fields are skipped.
type Input struct {
	Nav    *nav.ResolvedNav
	TopNav *nav.Tree
	Pages  *pages.Index
	Data   *content.Data
}

type checker struct {
	in        Input
	report    *Report
	reachable map[string]bool
}

// Check runs every rule and returns the report. It never fails; broken
// links are issues, not errors.
func Check(in Input) *Report {
	c := &checker{
		in:        in,
		report:    &Report{},
		reachable: make(map[string]bool),
	}
	if in.Pages == nil {
		return c.report
	}
	c.report.Pages = in.Pages.Len()

	if in.Nav != nil {
		for _, t := range in.Nav.Versions {
			c.tree("sidebar "+t.Key, t)
		}
	}
	if in.TopNav != nil {
		c.tree("nav", *in.TopNav)
	}
	for _, p := range in.Pages.Pages() {
		c.page(p)
	}
	if in.Data != nil {
		for _, ref := range in.Data.Refs() {
			c.ref(ref)
		}
	}
	c.orphans()
	return c.report
}

func (c *checker) tree(source string, t nav.Tree) {
	for _, l := range t.Links() {
		if l.External || isAsset(l.Path) {
			continue
		}
		c.report.Links++
		if c.resolve(l.Path) {
			continue
		}
		where := append(append([]string{source}, l.Trail...), l.Text)
		c.add(SeverityError, RuleNavTarget, strings.Join(nonEmpty(where), " > "), l.Path, "navigation entry has no page")
	}
}

func (c *checker) page(p pages.Page) {
	seen := make(map[string]bool)
	for _, l := range p.Links {
		target, ok := internalTarget(p.Route, l.Destination)
		if !ok || seen[target] {
			continue
		}
		seen[target] = true
		c.report.Links++
		// Links between pages do not count toward reachability.
		if c.in.Pages.Has(target) {
			continue
		}
		c.add(SeverityError, RulePageLink, p.File, l.Destination, "link to missing page")
	}
}

func (c *checker) ref(ref content.Ref) {
	href := strings.TrimSpace(ref.Href)
	if href == "" || nav.IsExternal(href) || isAsset(href) {
		return
	}
	c.report.Links++
	if c.resolve(href) {
		return
	}
	c.add(SeverityError, RuleContentRef, ref.Source, href, "data entry links to missing page")
}

func (c *checker) orphans() {
	for _, p := range c.in.Pages.Pages() {
		if p.Route == "/" || c.reachable[p.Route] {
			continue
		}
		c.add(SeverityWarning, RuleOrphanPage, p.File, p.Route, "page is not linked from any navigation")
	}
}

// resolve looks link up and marks the page it finds as reachable.
func (c *checker) resolve(link string) bool {
	p, ok := c.in.Pages.Lookup(link)
	if ok {
		c.reachable[p.Route] = true
	}
	return ok
}

func (c *checker) add(sev Severity, rule, source, target, msg string) {
	c.report.Issues = append(c.report.Issues, Issue{
		Severity: sev,
		Rule:     rule,
		Source:   source,
		Target:   target,
		Message:  msg,
	})
}

// internalTarget resolves dest, as written on the page at route, to an
// absolute site path. ok is false for links that are not checked.
func internalTarget(route, dest string) (string, bool) {
	dest = strings.TrimSpace(dest)
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "?") || nav.IsExternal(dest) {
		return "", false
	}
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		dest = dest[:i]
	}
	if isAsset(dest) {
		return "", false
	}
	if strings.HasPrefix(dest, "/") {
		return dest, true
	}
	dir := route
	if !strings.HasSuffix(dir, "/") {
		dir = path.Dir(dir) + "/"
	}
	joined := path.Join(dir, dest)
	if strings.HasSuffix(dest, "/") && joined != "/" {
		joined += "/"
	}
	return joined, true
}

func isAsset(link string) bool {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}
	if strings.HasSuffix(link, "/") {
		return false
	}
	ext := path.Ext(path.Base(link))
	return ext != "" && ext != ".md" && ext != ".html"
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
