package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/server/httpserver"
	"git.home.luguber.info/inful/docnav/internal/site"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// TriggerStartup labels the initial build of 'serve'.
const TriggerStartup = "startup"

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Addr    string `help:"Listen address (overrides server.addr)"`
	NoWatch bool   `name:"no-watch" help:"Do not reload when sources change"`

	// ready is called with the bound address once serving.
	ready func(addr string)
}

func (s *ServeCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return s.serve(ctx, g, root)
}

func (s *ServeCmd) serve(ctx context.Context, g *Global, root *CLI) error {
	cfg, err := root.loadConfig(g)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewPrometheusRecorder(reg)
	opts := site.Options{Recorder: recorder, Logger: g.Logger}

	addr := cfg.Server.Addr
	if s.Addr != "" {
		addr = s.Addr
	}
	srv := httpserver.New(httpserver.Options{
		Addr:        addr,
		MetricsPath: cfg.Server.MetricsPath,
		Gatherer:    reg,
		Recorder:    recorder,
		Logger:      g.Logger,
		Load: func(ctx context.Context) (*site.Snapshot, error) {
			_, snap, err := site.Load(ctx, root.Config, opts)
			return snap, err
		},
	})

	// The first build must succeed; later failures keep the last snapshot.
	if _, err := srv.Reload(ctx, TriggerStartup); err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}

	stops, err := s.startTriggers(ctx, g, root, cfg, srv)
	if err != nil {
		_ = srv.Stop(context.Background())
		return err
	}
	if s.ready != nil {
		s.ready(srv.Addr())
	}

	<-ctx.Done()
	g.Logger.Info("Shutdown signal received, stopping preview server")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	for i := len(stops) - 1; i >= 0; i-- {
		if err := stops[i](stopCtx); err != nil {
			g.Logger.Warn("Failed to stop reload trigger", "error", err)
		}
	}
	return srv.Stop(stopCtx)
}

// startTriggers starts the source watcher and the periodic reload job as
// configured and returns their stop functions in start order.
func (s *ServeCmd) startTriggers(ctx context.Context, g *Global, root *CLI, cfg *config.Config, srv *httpserver.Server) ([]func(context.Context) error, error) {
	var stops []func(context.Context) error
	stopAll := func() {
		for i := len(stops) - 1; i >= 0; i-- {
			_ = stops[i](context.Background())
		}
	}

	if cfg.Watch.Enabled && !s.NoWatch {
		w, err := watch.New(srv, watch.Options{
			ConfigPath: root.Config,
			Dirs:       []string{cfg.ContentDir(), cfg.DataDir()},
			Debounce:   cfg.Watch.DebounceDuration(),
			Logger:     g.Logger,
		})
		if err != nil {
			return nil, err
		}
		if err := w.Start(ctx); err != nil {
			_ = w.Stop(context.Background())
			return nil, err
		}
		stops = append(stops, w.Stop)
	}

	if interval := cfg.Watch.ReloadInterval(); interval > 0 {
		sched, err := watch.NewScheduler(srv, interval, g.Logger)
		if err != nil {
			stopAll()
			return nil, err
		}
		sched.Start(ctx)
		stops = append(stops, sched.Stop)
	}
	return stops, nil
}
