package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/site"
)

type fakeReloader struct {
	mu       sync.Mutex
	triggers []string
	err      error
}

func (f *fakeReloader) Reload(_ context.Context, trigger string) (*site.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.triggers = append(f.triggers, trigger)
	if f.err != nil {
		return nil, f.err
	}
	return &site.Snapshot{ID: "build"}, nil
}

func (f *fakeReloader) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.triggers)
}

func (f *fakeReloader) last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.triggers) == 0 {
		return ""
	}
	return f.triggers[len(f.triggers)-1]
}

type tree struct {
	root   string
	config string
	docs   string
	data   string
}

func newTree(t *testing.T) tree {
	t.Helper()
	root := t.TempDir()
	tr := tree{
		root:   root,
		config: filepath.Join(root, "docnav.yaml"),
		docs:   filepath.Join(root, "docs"),
		data:   filepath.Join(root, "data"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(tr.docs, "guide"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(tr.docs, "node_modules"), 0o755))
	require.NoError(t, os.MkdirAll(tr.data, 0o755))
	require.NoError(t, os.WriteFile(tr.config, []byte("version: \"1\"\n"), 0o600))
	return tr
}

func startWatcher(t *testing.T, tr tree, r Reloader) *Watcher {
	t.Helper()
	w, err := New(r, Options{
		ConfigPath: tr.config,
		Dirs:       []string{tr.docs, tr.data},
		Debounce:   50 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	t.Cleanup(func() { _ = w.Stop(context.Background()) })
	return w
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestWatcherReloadsOnChanges(t *testing.T) {
	tests := []struct {
		name string
		file func(tree) string
	}{
		{"config", func(tr tree) string { return tr.config }},
		{"page", func(tr tree) string { return filepath.Join(tr.docs, "guide", "intro.md") }},
		{"data", func(tr tree) string { return filepath.Join(tr.data, "blog.yaml") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTree(t)
			r := &fakeReloader{}
			startWatcher(t, tr, r)

			writeFile(t, tt.file(tr), "changed\n")
			require.Eventually(t, func() bool { return r.count() == 1 }, 2*time.Second, 10*time.Millisecond)
			assert.Equal(t, TriggerFSNotify, r.last())
		})
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{}
	startWatcher(t, tr, r)

	page := filepath.Join(tr.docs, "guide", "intro.md")
	for i := range 5 {
		writeFile(t, page, string(rune('a'+i)))
		time.Sleep(10 * time.Millisecond)
	}
	require.Eventually(t, func() bool { return r.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, r.count())
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{}
	startWatcher(t, tr, r)

	writeFile(t, filepath.Join(tr.root, "README.txt"), "notes")
	writeFile(t, filepath.Join(tr.docs, "guide", "logo.png"), "png")
	writeFile(t, filepath.Join(tr.docs, "node_modules", "pkg.md"), "vendored")
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, r.count())
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{}
	startWatcher(t, tr, r)

	dir := filepath.Join(tr.docs, "next")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.Eventually(t, func() bool { return r.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFile(t, filepath.Join(dir, "index.md"), "# Next\n")
	require.Eventually(t, func() bool { return r.count() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherSurvivesReloadErrors(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{err: derrors.ConfigError("broken").Build()}
	startWatcher(t, tr, r)

	writeFile(t, tr.config, "nav: [\n")
	require.Eventually(t, func() bool { return r.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	writeFile(t, tr.config, "version: \"1\"\n")
	require.Eventually(t, func() bool { return r.count() == 2 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherLifecycle(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{}

	_, err := New(nil, Options{})
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))

	w, err := New(r, Options{ConfigPath: tr.config, Dirs: []string{filepath.Join(tr.root, "missing")}})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	require.Error(t, w.Start(context.Background()))
	require.NoError(t, w.Stop(context.Background()))
	require.NoError(t, w.Stop(context.Background()))

	w, err = New(r, Options{Dirs: []string{tr.config}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop(context.Background()) })
	err = w.Start(context.Background())
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryFileSystem))
}

func TestWatcherStopsWithContext(t *testing.T) {
	tr := newTree(t)
	r := &fakeReloader{}
	w, err := New(r, Options{ConfigPath: tr.config, Debounce: 20 * time.Millisecond})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	done := make(chan struct{})
	go func() {
		_ = w.Stop(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRelevant(t *testing.T) {
	w, err := New(&fakeReloader{}, Options{ConfigPath: "/site/docnav.yaml", Dirs: []string{"/site/docs", "/site/data"}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop(context.Background()) })

	tests := []struct {
		name string
		want bool
	}{
		{"/site/docnav.yaml", true},
		{"/site/other.yaml", false},
		{"/site/docs/index.md", true},
		{"/site/docs/guide/PATHS.MD", true},
		{"/site/docs/.vitepress", false},
		{"/site/docs/logo.svg", false},
		{"/site/data/blog.yml", true},
		{"/site/docs-old/index.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.name))
		})
	}
}

func TestSchedulerReloads(t *testing.T) {
	r := &fakeReloader{}
	s, err := NewScheduler(r, 20*time.Millisecond, nil)
	require.NoError(t, err)
	s.Start(context.Background())
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	require.Eventually(t, func() bool { return r.count() >= 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, TriggerSchedule, r.last())

	require.NoError(t, s.Stop(context.Background()))
	n := r.count()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, n, r.count(), "no reloads after stop")
	require.NoError(t, s.Stop(context.Background()))
}

func TestSchedulerStopsWithContext(t *testing.T) {
	r := &fakeReloader{err: errors.New("unavailable")}
	s, err := NewScheduler(r, 20*time.Millisecond, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Stop(context.Background()) })

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return r.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	require.Eventually(t, func() bool { return s.ctx.Err() != nil }, time.Second, 5*time.Millisecond)
}

func TestNewSchedulerValidation(t *testing.T) {
	_, err := NewScheduler(&fakeReloader{}, 0, nil)
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryValidation))

	_, err = NewScheduler(nil, time.Second, nil)
	require.Error(t, err)
}
