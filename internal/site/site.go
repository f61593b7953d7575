// Package site assembles an immutable Snapshot of the documentation site:
// resolved navigation, site data, API types, pages and the link report.
package site

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/apitypes"
	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/content"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/linkcheck"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/observability"
	"git.home.luguber.info/inful/docnav/internal/pages"
)

// Options tunes Build.
type Options struct {
	Recorder metrics.Recorder
	Logger   *slog.Logger
	// Concurrency bounds parallel page parsing; zero uses GOMAXPROCS.
	Concurrency int
}

func (o Options) withDefaults() Options {
	if o.Recorder == nil {
		o.Recorder = metrics.NoopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Snapshot is the result of one build. It is never modified after Build
// returns and may be shared between goroutines.
type Snapshot struct {
	ID       string
	BuiltAt  time.Time
	Duration time.Duration

	Site   config.SiteConfig
	Theme  config.ThemeConfig
	Social []config.SocialLink

	Nav    *nav.ResolvedNav
	TopNav nav.Tree
	Pages  *pages.Index
	Data   *content.Data
	Types  *apitypes.Registry
	Report *linkcheck.Report
}

type builder struct {
	cfg  *config.Config
	opts Options
	snap *Snapshot
}

// Load reads the configuration at path and builds a snapshot from it.
func Load(ctx context.Context, path string, opts Options) (*config.Config, *Snapshot, error) {
	opts = opts.withDefaults()
	var cfg *config.Config
	err := stage(ctx, opts, metrics.StageConfig, func(context.Context) error {
		var err error
		cfg, err = config.Load(path)
		return err
	})
	if err != nil {
		opts.Recorder.IncBuildOutcome(metrics.ResultFailed)
		return nil, nil, err
	}
	snap, err := Build(ctx, cfg, opts)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, snap, nil
}

// Build resolves the navigation, loads site data and API types, scans the
// content tree and cross-checks links. Broken links do not fail a build;
// they are recorded in Snapshot.Report.
func Build(ctx context.Context, cfg *config.Config, opts Options) (*Snapshot, error) {
	opts = opts.withDefaults()
	if cfg == nil {
		opts.Recorder.IncBuildOutcome(metrics.ResultFailed)
		return nil, derrors.ConfigError("config required").Build()
	}

	start := time.Now()
	b := &builder{
		cfg:  cfg,
		opts: opts,
		snap: &Snapshot{
			ID:      uuid.NewString(),
			BuiltAt: start,
			Site:    cfg.Site,
			Theme:   cfg.Theme,
			Social:  append([]config.SocialLink(nil), cfg.Social...),
		},
	}
	ctx = observability.WithBuildID(ctx, b.snap.ID)

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{metrics.StageResolve, b.resolve},
		{metrics.StageContent, b.content},
		{metrics.StageTypes, b.types},
		{metrics.StagePages, b.pages},
		{metrics.StageLinkCheck, b.linkcheck},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			opts.Recorder.IncBuildOutcome(metrics.ResultFailed)
			return nil, err
		}
		if err := stage(ctx, opts, s.name, s.run); err != nil {
			opts.Recorder.IncBuildOutcome(metrics.ResultFailed)
			opts.Logger.ErrorContext(ctx, "Site build failed", logfields.Stage(s.name), logfields.Error(err))
			return nil, err
		}
	}

	b.snap.Duration = time.Since(start)
	outcome := metrics.ResultSuccess
	if len(b.snap.Report.Issues) > 0 {
		outcome = metrics.ResultWarning
	}
	opts.Recorder.IncBuildOutcome(outcome)
	opts.Recorder.ObserveBuildDuration(b.snap.Duration)

	st := b.snap.Nav.Stats()
	opts.Logger.InfoContext(ctx, "Site built",
		slog.Int("versions", st.Versions),
		logfields.Leaves(st.Links),
		logfields.Pages(b.snap.Pages.Len()),
		logfields.Issues(len(b.snap.Report.Issues)),
		logfields.DurationMS(float64(b.snap.Duration.Microseconds())/1000))
	return b.snap, nil
}

func stage(ctx context.Context, opts Options, name string, fn func(context.Context) error) error {
	start := time.Now()
	ctx = observability.WithStage(ctx, name)
	err := fn(ctx)
	opts.Recorder.ObserveStageDuration(name, time.Since(start))
	if err != nil {
		opts.Recorder.IncStageResult(name, metrics.ResultFailed)
		return err
	}
	opts.Recorder.IncStageResult(name, metrics.ResultSuccess)
	opts.Logger.DebugContext(ctx, "Stage complete", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}

func (b *builder) resolve(context.Context) error {
	resolved, err := nav.Resolve(b.cfg.Sidebar)
	if err != nil {
		return err
	}
	top, err := nav.ResolveTree(nav.DefaultVersion, b.cfg.Nav)
	if err != nil {
		return err
	}
	b.snap.Nav = resolved
	b.snap.TopNav = top
	for _, t := range resolved.Versions {
		b.opts.Recorder.SetNavLinks(t.Key, len(t.Links()))
	}
	return nil
}

func (b *builder) content(context.Context) error {
	data, err := content.Load(b.cfg.DataDir())
	if err != nil {
		return err
	}
	b.snap.Data = data
	return nil
}

func (b *builder) types(context.Context) error {
	reg, err := apitypes.Load(b.typesFile())
	if err != nil {
		return err
	}
	b.snap.Types = reg
	return nil
}

func (b *builder) typesFile() string {
	name := b.cfg.Content.Types
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(b.cfg.DataDir(), name)
}

func (b *builder) pages(ctx context.Context) error {
	ix, err := pages.Scan(ctx, b.cfg.ContentDir(), pages.Options{
		Concurrency: b.opts.Concurrency,
		LastUpdated: b.cfg.Site.LastUpdated,
		Logger:      b.opts.Logger,
	})
	if err != nil {
		return err
	}
	b.snap.Pages = ix
	b.opts.Recorder.SetPages(ix.Len())
	return nil
}

func (b *builder) linkcheck(ctx context.Context) error {
	top := b.snap.TopNav
	r := linkcheck.Check(linkcheck.Input{
		Nav:    b.snap.Nav,
		TopNav: &top,
		Pages:  b.snap.Pages,
		Data:   b.snap.Data,
	})
	b.snap.Report = r
	b.opts.Recorder.SetLinkIssues(linkcheck.SeverityError.String(), r.ErrorCount())
	b.opts.Recorder.SetLinkIssues(linkcheck.SeverityWarning.String(), r.WarningCount())
	for _, issue := range r.Issues {
		level := slog.LevelWarn
		if issue.Severity == linkcheck.SeverityWarning {
			level = slog.LevelDebug
		}
		b.opts.Logger.Log(ctx, level, issue.Message,
			slog.String("source", issue.Source),
			logfields.Path(issue.Target),
			slog.String("rule", issue.Rule))
	}
	return nil
}

// Select returns the navigation tree serving path.
func (s *Snapshot) Select(path string) (nav.Tree, error) {
	return s.Nav.Select(path)
}

// Page returns the page serving path.
func (s *Snapshot) Page(path string) (pages.Page, bool) {
	return s.Pages.Lookup(path)
}

// EditLink fills the site edit link pattern with the page's file path.
// It is empty when no pattern is configured.
func (s *Snapshot) EditLink(p pages.Page) string {
	if s.Site.EditLink == "" {
		return ""
	}
	return strings.ReplaceAll(s.Site.EditLink, ":path", p.File)
}
