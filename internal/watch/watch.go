// Package watch triggers snapshot reloads when site sources change on disk
// or on a fixed schedule.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// Reload trigger labels.
const (
	TriggerFSNotify = "fsnotify"
	TriggerSchedule = "schedule"
)

const defaultDebounce = 300 * time.Millisecond

// Reloader rebuilds the served snapshot.
type Reloader interface {
	Reload(ctx context.Context, trigger string) (*site.Snapshot, error)
}

// Options configures a Watcher.
type Options struct {
	// ConfigPath is the site configuration file.
	ConfigPath string
	// Dirs are watched recursively for markdown and YAML changes.
	Dirs     []string
	Debounce time.Duration
	Logger   *slog.Logger
}

// Watcher reloads the site after a quiet period following source changes.
type Watcher struct {
	reloader   Reloader
	configPath string
	dirs       []string
	debounce   time.Duration
	logger     *slog.Logger

	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	started  bool
	stopOnce sync.Once
	stopChan chan struct{}
	pending  chan struct{}
	wg       sync.WaitGroup
}

// New creates a watcher; nothing is watched until Start.
func New(reloader Reloader, opts Options) (*Watcher, error) {
	if reloader == nil {
		return nil, derrors.ValidationError("reloader is required").Build()
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	configPath := ""
	if opts.ConfigPath != "" {
		abs, err := filepath.Abs(opts.ConfigPath)
		if err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to resolve config path").
				WithContext("path", opts.ConfigPath).
				Build()
		}
		configPath = abs
	}
	dirs := make([]string, 0, len(opts.Dirs))
	for _, d := range opts.Dirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to resolve watch directory").
				WithContext("path", d).
				Build()
		}
		dirs = append(dirs, abs)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "failed to create file watcher").Build()
	}
	return &Watcher{
		reloader:   reloader,
		configPath: configPath,
		dirs:       dirs,
		debounce:   opts.Debounce,
		logger:     opts.Logger,
		watcher:    fw,
		stopChan:   make(chan struct{}),
		pending:    make(chan struct{}, 1),
	}, nil
}

// Start registers the watches and begins processing events. Missing source
// directories are skipped; the config directory must exist.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return derrors.RuntimeError("watcher already started").Build()
	}

	if w.configPath != "" {
		dir := filepath.Dir(w.configPath)
		if err := w.watcher.Add(dir); err != nil {
			return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to watch config directory").
				WithContext("path", dir).
				Build()
		}
	}
	for _, dir := range w.dirs {
		if err := w.addTree(dir); err != nil {
			return err
		}
	}
	w.started = true

	w.logger.Info("Starting source watcher",
		slog.String("config_path", w.configPath),
		slog.Int("watches", len(w.watcher.WatchList())),
		slog.Duration("debounce", w.debounce))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop closes the watcher and waits for pending work to finish.
func (w *Watcher) Stop(context.Context) error {
	var err error
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping source watcher")
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to close file watcher").Build()
	}
	return nil
}

// addTree watches dir and every subdirectory that is not skipped.
func (w *Watcher) addTree(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			w.logger.Debug("Skipping missing watch directory", logfields.Path(root))
			return nil
		}
		return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to stat watch directory").
			WithContext("path", root).
			Build()
	}
	if !info.IsDir() {
		return derrors.FileSystemError("watch path is not a directory").WithContext("path", root).Build()
	}
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(p); err != nil {
			return derrors.WrapError(err, derrors.CategoryFileSystem, "failed to watch directory").
				WithContext("path", p).
				Build()
		}
		return nil
	})
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

// relevant reports whether a change to name can alter the snapshot.
func (w *Watcher) relevant(name string) bool {
	if w.configPath != "" && filepath.Clean(name) == w.configPath {
		return true
	}
	if skipDir(filepath.Base(name)) {
		return false
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".yaml", ".yml":
		return w.underDirs(name)
	}
	return false
}

func (w *Watcher) underDirs(name string) bool {
	for _, dir := range w.dirs {
		rel, err := filepath.Rel(dir, name)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Source watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() && w.underDirs(event.Name) {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
			}
			w.trigger()
			return
		}
	}
	if event.Op == fsnotify.Chmod || !w.relevant(event.Name) {
		return
	}
	w.logger.Debug("Source change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
	w.trigger()
}

// trigger requests a debounced reload.
func (w *Watcher) trigger() {
	select {
	case w.pending <- struct{}{}:
	default:
	}
}

// reloadLoop restarts the quiet-period timer on every change and reloads
// once it expires.
func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-w.pending:
			timer.Reset(w.debounce)
		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	snap, err := w.reloader.Reload(ctx, TriggerFSNotify)
	if err != nil {
		w.logger.Error("Reload after source change failed", logfields.Error(err))
		return
	}
	w.logger.Info("Reloaded after source change", logfields.BuildID(snap.ID))
}
