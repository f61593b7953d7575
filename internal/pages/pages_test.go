package pages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/inful/mdfp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
}

func contentTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "index.md", "---\ntitle: Serinus\nlayout: home\n---\n\nWelcome.\n")
	writeFile(t, root, "quick_start.md", "# Quick Start\n\nSee [modules](/modules).\n")
	writeFile(t, root, "modules.md", "Modules without a heading.\n")
	writeFile(t, root, "next/index.md", "# Next\n")
	writeFile(t, root, "next/foundations/paths.md", "# Paths\n\n<a href=\"/next/\">up</a>\n")
	writeFile(t, root, ".vitepress/theme/index.md", "# Theme internals\n")
	writeFile(t, root, "node_modules/pkg/readme.md", "# Vendored\n")
	writeFile(t, root, "notes.txt", "not markdown")
	return root
}

func TestRoute(t *testing.T) {
	tests := []struct {
		rel  string
		want string
	}{
		{"index.md", "/"},
		{"guide/index.md", "/guide/"},
		{"guide/setup.md", "/guide/setup"},
		{"quick_start.md", "/quick_start"},
		{"next/foundations/paths.md", "/next/foundations/paths"},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.rel))
		})
	}
}

func TestScan(t *testing.T) {
	root := contentTree(t)

	ix, err := Scan(context.Background(), root, Options{Concurrency: 2})
	require.NoError(t, err)
	require.Equal(t, 5, ix.Len())

	var files []string
	for _, p := range ix.Pages() {
		files = append(files, p.File)
	}
	assert.Equal(t, []string{
		"index.md",
		"modules.md",
		"next/foundations/paths.md",
		"next/index.md",
		"quick_start.md",
	}, files)

	home, ok := ix.Lookup("/")
	require.True(t, ok)
	assert.Equal(t, "Serinus", home.Title)
	assert.Equal(t, "home", home.Frontmatter["layout"])

	qs, ok := ix.Lookup("/quick_start")
	require.True(t, ok)
	assert.Equal(t, "Quick Start", qs.Title)
	require.Len(t, qs.Links, 1)
	assert.Equal(t, "/modules", qs.Links[0].Destination)

	mods, ok := ix.Lookup("/modules")
	require.True(t, ok)
	assert.Equal(t, "modules", mods.Title, "falls back to the file name")

	paths, ok := ix.Lookup("/next/foundations/paths")
	require.True(t, ok)
	require.Len(t, paths.Links, 1)
	assert.Equal(t, "/next/", paths.Links[0].Destination)

	assert.False(t, ix.Has("/theme/"), "dot directories are skipped")
	assert.False(t, ix.Has("/pkg/readme"), "node_modules is skipped")
}

func TestIndexLookupVariants(t *testing.T) {
	ix, err := Scan(context.Background(), contentTree(t), Options{})
	require.NoError(t, err)

	for _, link := range []string{
		"/next/",
		"/next",
		"/next/index.md",
		"/next/index.html",
		"/quick_start.md",
		"/quick_start.html",
		"/quick_start/",
		"/quick_start#install",
		"quick_start?x=1",
	} {
		assert.True(t, ix.Has(link), link)
	}
	assert.False(t, ix.Has("/missing"))
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), Options{})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryFileSystem))
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "page.md", "# Page\n")
	_, err := Scan(context.Background(), filepath.Join(root, "page.md"), Options{})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryFileSystem))
}

func TestScanBrokenFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "broken.md", "---\ntitle: never closed\n\n# Body\n")
	_, err := Scan(context.Background(), root, Options{})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryContent))
}

func TestScanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, contentTree(t), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewIndexRejectsDuplicateRoutes(t *testing.T) {
	_, err := NewIndex([]Page{
		{File: "a.md", Route: "/a"},
		{File: "b.md", Route: "/a"},
	})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryContent))
}

func TestFingerprintIgnoresStoredValue(t *testing.T) {
	body := []byte("# Title\n")
	plain, err := Fingerprint(map[string]any{"title": "Title"}, body)
	require.NoError(t, err)
	stored, err := Fingerprint(map[string]any{"title": "Title", mdfp.FingerprintField: "abc"}, body)
	require.NoError(t, err)
	assert.Equal(t, plain, stored)
	assert.NotEmpty(t, plain)

	other, err := Fingerprint(map[string]any{"title": "Title"}, []byte("# Other\n"))
	require.NoError(t, err)
	assert.NotEqual(t, plain, other)
}

func TestStale(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "page.md", "---\ntitle: Page\n"+mdfp.FingerprintField+": bogus\n---\n\nBody.\n")

	ix, err := Scan(context.Background(), root, Options{})
	require.NoError(t, err)
	page, ok := ix.Lookup("/page")
	require.True(t, ok)
	assert.Equal(t, "bogus", page.StoredFingerprint)
	assert.True(t, page.Stale())

	writeFile(t, root, "page.md", "---\ntitle: Page\n"+mdfp.FingerprintField+": "+page.Fingerprint+"\n---\n\nBody.\n")
	ix, err = Scan(context.Background(), root, Options{})
	require.NoError(t, err)
	page, ok = ix.Lookup("/page")
	require.True(t, ok)
	assert.False(t, page.Stale())

	assert.False(t, Page{Fingerprint: "x"}.Stale(), "no stored fingerprint")
}

func TestScanLastUpdated(t *testing.T) {
	repoDir := t.TempDir()
	writeFile(t, repoDir, "docs/index.md", "# Home\n")
	writeFile(t, repoDir, "docs/untracked.md", "# Draft\n")

	repo, err := git.PlainInit(repoDir, false)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("docs/index.md")
	require.NoError(t, err)
	when := time.Date(2024, time.August, 1, 12, 0, 0, 0, time.UTC)
	_, err = wt.Commit("docs: add home", &git.CommitOptions{
		Author: &object.Signature{Name: "Docs", Email: "docs@example.com", When: when},
	})
	require.NoError(t, err)

	ix, err := Scan(context.Background(), filepath.Join(repoDir, "docs"), Options{LastUpdated: true})
	require.NoError(t, err)

	home, ok := ix.Lookup("/")
	require.True(t, ok)
	assert.True(t, home.LastUpdated.Equal(when), "got %s", home.LastUpdated)

	draft, ok := ix.Lookup("/untracked")
	require.True(t, ok)
	assert.True(t, draft.LastUpdated.IsZero())
}

func TestScanLastUpdatedOutsideRepository(t *testing.T) {
	ix, err := Scan(context.Background(), contentTree(t), Options{LastUpdated: true})
	require.NoError(t, err)
	for _, p := range ix.Pages() {
		assert.True(t, p.LastUpdated.IsZero(), p.File)
	}
}
