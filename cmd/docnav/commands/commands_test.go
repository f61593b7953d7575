package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/config"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

const siteConfig = `version: "1"
site:
  title: Serinus
nav:
  - text: Guide
    link: /quick_start
sidebar:
  /next/:
    - text: Foundations
      base: /next/foundations
      items:
        - text: Paths
          link: /paths
  /:
    - text: Introduction
      items:
        - text: Quick Start
          link: /quick_start
        - text: Modules
          link: /modules
content:
  dir: docs
  data_dir: data
watch:
  enabled: true
  debounce: 50ms
logging:
  level: warn
`

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
}

// siteTree writes a small site and returns its config path.
func siteTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "docnav.yaml", siteConfig)
	writeFile(t, root, "docs/index.md", "# Serinus\n")
	writeFile(t, root, "docs/quick_start.md", "# Quick Start\n\nSee [modules](./modules).\n")
	writeFile(t, root, "docs/modules.md", "# Modules\n")
	writeFile(t, root, "docs/next/foundations/paths.md", "# Paths\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	return filepath.Join(root, "docnav.yaml")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cli := &CLI{}
	g := &Global{Out: &out, Err: &logs}
	parser, err := NewParser(cli, g,
		kong.Writers(&out, &logs),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit %d: %s", code, logs.String()) }))
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return out.String(), err
	}
	err = kctx.Run(g, cli)
	return out.String(), err
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docnav.yaml")

	out, err := run(t, "-c", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = config.Load(path)
	require.NoError(t, err, "example configuration is valid")

	_, err = run(t, "-c", path, "init")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))

	_, err = run(t, "-c", path, "init", "--force")
	require.NoError(t, err)

	out, err = run(t, "init", "-o", dir, "--force")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(dir, "docnav.yaml"))
}

func TestResolve(t *testing.T) {
	path := siteTree(t)

	out, err := run(t, "-c", path, "resolve", "-f", "json")
	require.NoError(t, err)
	var resolved struct {
		Versions []struct {
			Key      string `json:"key"`
			Sections []struct {
				Text  string `json:"text"`
				Items []struct {
					Path string `json:"path"`
				} `json:"items"`
			} `json:"sections"`
		} `json:"versions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resolved))
	require.Len(t, resolved.Versions, 2)
	assert.Equal(t, "/next/", resolved.Versions[0].Key)
	assert.Equal(t, "/next/foundations/paths", resolved.Versions[0].Sections[0].Items[0].Path)

	out, err = run(t, "-c", path, "resolve", "--version", "/")
	require.NoError(t, err)
	assert.Contains(t, out, "key: /\n")
	assert.Contains(t, out, "path: /quick_start")
	assert.NotContains(t, out, "/next/")

	_, err = run(t, "-c", path, "resolve", "--version", "/v1/")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestResolveInvalidNavigation(t *testing.T) {
	root := t.TempDir()
	cfg := strings.Replace(siteConfig, "          link: /modules\n", "          link: /quick_start\n", 1)
	writeFile(t, root, "docnav.yaml", cfg)

	_, err := run(t, "-c", filepath.Join(root, "docnav.yaml"), "resolve")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	assert.Equal(t, 7, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestSelect(t *testing.T) {
	path := siteTree(t)

	out, err := run(t, "-c", path, "select", "/next/foundations/paths")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "version /next/", lines[0])
	assert.Contains(t, lines[1], "Foundations > Paths")
	assert.Contains(t, lines[1], "/next/foundations/paths")

	out, err = run(t, "-c", path, "select", "/anything", "-f", "json")
	require.NoError(t, err)
	var tree struct {
		Key string `json:"key"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "/", tree.Key)
}

func TestCheck(t *testing.T) {
	path := siteTree(t)

	out, err := run(t, "-c", path, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "0 errors")

	require.NoError(t, os.Remove(filepath.Join(filepath.Dir(path), "docs", "modules.md")))
	out, err = run(t, "-c", path, "check")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryContent))
	assert.Equal(t, 4, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
	assert.Contains(t, out, "/modules")

	out, err = run(t, "-c", path, "check", "-f", "json", "-q")
	require.Error(t, err)
	var report struct {
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Errors)
	assert.Zero(t, report.Warnings)
}

func TestCheckMissingConfig(t *testing.T) {
	_, err := run(t, "-c", filepath.Join(t.TempDir(), "docnav.yaml"), "check")
	require.Error(t, err)
	assert.Equal(t, 3, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestIcons(t *testing.T) {
	out, err := run(t, "icons")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "github")

	out, err = run(t, "icons", "github", "--class", "w-4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.Contains(t, out, `class="w-4"`)

	_, err = run(t, "icons", "nope")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestTheme(t *testing.T) {
	out, err := run(t, "theme")
	require.NoError(t, err)
	assert.Equal(t, []string{"serinus-nocturne", "serinus-parchment"}, strings.Fields(out))

	out, err = run(t, "theme", "serinus-parchment")
	require.NoError(t, err)
	var th map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &th))
	assert.Equal(t, "serinus-parchment", th["name"])

	_, err = run(t, "theme", "solarized")
	require.Error(t, err)
}

func TestServe(t *testing.T) {
	path := siteTree(t)
	ready := make(chan string, 1)
	cmd := &ServeCmd{Addr: "127.0.0.1:0", ready: func(addr string) { ready <- addr }}
	g := &Global{Out: io.Discard, Err: io.Discard, Logger: newLogger(io.Discard, 0, config.LogFormatText)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- cmd.serve(ctx, g, &CLI{Config: path}) }()

	var addr string
	select {
	case addr = <-ready:
	case err := <-done:
		t.Fatalf("serve exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not become ready")
	}

	health := func() map[string]any {
		resp, err := http.Get("http://" + addr + "/healthz")
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		return body
	}
	first := health()["build_id"]
	require.NotEmpty(t, first)

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "docnav_build_outcomes_total")

	writeFile(t, filepath.Dir(path), "docs/modules.md", "# Modules\n\nUpdated.\n")
	require.Eventually(t, func() bool { return health()["build_id"] != first }, 5*time.Second, 25*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestServeFailsOnBrokenSite(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "docnav.yaml", siteConfig)
	writeFile(t, root, "data/blog.yaml", "posts:\n  - title: Orphan\n    author: Nobody\n    date: 1 Aug 2024\n    href: /blog/x\n")
	g := &Global{Out: io.Discard, Err: io.Discard, Logger: newLogger(io.Discard, 0, config.LogFormatText)}

	err := (&ServeCmd{Addr: "127.0.0.1:0"}).serve(context.Background(), g, &CLI{Config: filepath.Join(root, "docnav.yaml")})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryContent))
}
