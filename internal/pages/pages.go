// Package pages indexes the Markdown content tree by clean URL route.
package pages

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/inful/mdfp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Page is one Markdown document of the content tree.
type Page struct {
	File              string          `json:"file"` // slash separated, relative to the content root
	Route             string          `json:"route"`
	Title             string          `json:"title"`
	Frontmatter       map[string]any  `json:"frontmatter,omitempty"`
	Links             []markdown.Link `json:"-"`
	Fingerprint       string          `json:"fingerprint"`
	StoredFingerprint string          `json:"storedFingerprint,omitempty"` // recorded in the frontmatter
	LastUpdated       time.Time       `json:"lastUpdated,omitzero"`
}

// Stale reports whether the page records a fingerprint that no longer
// matches its content.
func (p Page) Stale() bool {
	return p.StoredFingerprint != "" && p.StoredFingerprint != p.Fingerprint
}

// Options tunes Scan.
type Options struct {
	// Concurrency bounds parallel file parsing; zero uses GOMAXPROCS.
	Concurrency int
	// LastUpdated fills Page.LastUpdated from git history when the content
	// root is inside a repository.
	LastUpdated bool
	Logger      *slog.Logger
}

// Index maps routes to pages.
type Index struct {
	pages   []Page
	byRoute map[string]int
}

// Route returns the clean URL of a content file: "guide/index.md" maps to
// "/guide/" and "guide/setup.md" to "/guide/setup".
func Route(rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".md")
	if rel == "index" {
		return "/"
	}
	if strings.HasSuffix(rel, "/index") {
		return "/" + strings.TrimSuffix(rel, "index")
	}
	return "/" + rel
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

// Scan walks root for Markdown files and parses them concurrently.
func Scan(ctx context.Context, root string, opts Options) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	files, err := collect(root)
	if err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	parsed := make([]Page, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := load(root, rel)
			if err != nil {
				return err
			}
			parsed[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.LastUpdated {
		if hist, err := openHistory(root); err != nil {
			logger.Warn("Last-updated dates unavailable", logfields.Error(err))
		} else {
			for i := range parsed {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				parsed[i].LastUpdated = hist.lastCommit(parsed[i].File)
			}
		}
	}

	ix, err := newIndex(parsed)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scanned content tree",
		logfields.Path(root),
		logfields.Pages(ix.Len()),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return ix, nil
}

func collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "content directory not accessible").
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return nil, derrors.FileSystemError("content path is not a directory").WithContext("path", root).Build()
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to walk content directory").
			WithContext("path", root).
			Build()
	}
	sort.Strings(files)
	return files, nil
}

func load(root, rel string) (Page, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		return Page{}, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to read page").
			WithContext("file", rel).
			Build()
	}
	doc, err := markdown.Parse(data)
	if err != nil {
		return Page{}, derrors.WrapError(err, derrors.CategoryContent, "failed to parse page").
			UserAction().
			WithContext("file", rel).
			Build()
	}
	fp, err := Fingerprint(doc.Frontmatter, doc.Body)
	if err != nil {
		return Page{}, derrors.WrapError(err, derrors.CategoryContent, "failed to fingerprint page").
			WithContext("file", rel).
			Build()
	}
	stored, _ := doc.Frontmatter[mdfp.FingerprintField].(string)
	title := doc.Title
	if title == "" {
		title = strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	}
	return Page{
		File:              rel,
		Route:             Route(rel),
		Title:             title,
		Frontmatter:       doc.Frontmatter,
		Links:             doc.Links,
		Fingerprint:       fp,
		StoredFingerprint: stored,
	}, nil
}

// Fingerprint hashes frontmatter and body with mdfp. The fingerprint field
// itself is excluded so a stored value can be compared against the content.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	forHash := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != mdfp.FingerprintField {
			forHash[k] = v
		}
	}
	fm := ""
	if len(forHash) > 0 {
		out, err := yaml.Marshal(forHash)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

func newIndex(pages []Page) (*Index, error) {
	ix := &Index{pages: pages, byRoute: make(map[string]int, len(pages))}
	for i, p := range pages {
		if prev, dup := ix.byRoute[p.Route]; dup {
			return nil, derrors.ContentError("two pages share a route").
				WithContext("route", p.Route).
				WithContext("file", p.File).
				WithContext("other", pages[prev].File).
				Build()
		}
		ix.byRoute[p.Route] = i
	}
	return ix, nil
}

// NewIndex builds an index from pages, rejecting duplicate routes.
func NewIndex(pages []Page) (*Index, error) {
	return newIndex(append([]Page(nil), pages...))
}

// Len is the number of pages.
func (ix *Index) Len() int { return len(ix.pages) }

// Pages returns the pages in file order.
func (ix *Index) Pages() []Page { return ix.pages }

// Lookup finds the page serving link. Query and fragment are ignored and
// ".md"/".html" suffixes, "index" names and a missing trailing slash are
// tolerated.
func (ix *Index) Lookup(link string) (Page, bool) {
	route := nav.PagePath(link)
	candidates := []string{route}
	if strings.HasSuffix(route, "/") && route != "/" {
		candidates = append(candidates, strings.TrimSuffix(route, "/"))
	} else if !strings.HasSuffix(route, "/") {
		candidates = append(candidates, route+"/")
	}
	for _, c := range candidates {
		if i, ok := ix.byRoute[c]; ok {
			return ix.pages[i], true
		}
	}
	return Page{}, false
}

// Has reports whether link resolves to a page.
func (ix *Index) Has(link string) bool {
	_, ok := ix.Lookup(link)
	return ok
}
