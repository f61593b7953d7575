// Package httpserver wires the preview API: a chi router over the handler
// modules, an atomically swapped site snapshot and deduplicated reloads.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	prom "github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/singleflight"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/observability"
	handlers "git.home.luguber.info/inful/docnav/internal/server/handlers"
	smw "git.home.luguber.info/inful/docnav/internal/server/middleware"
	"git.home.luguber.info/inful/docnav/internal/site"
)

// LoadFunc builds a fresh snapshot.
type LoadFunc func(ctx context.Context) (*site.Snapshot, error)

// Options configures a Server.
type Options struct {
	Addr        string
	MetricsPath string
	// Gatherer backs the metrics endpoint; nil disables it.
	Gatherer prom.Gatherer
	Recorder metrics.Recorder
	Logger   *slog.Logger
	Load     LoadFunc
}

// Server serves the current snapshot over HTTP.
type Server struct {
	opts         Options
	current      atomic.Pointer[site.Snapshot]
	reloads      singleflight.Group
	errorAdapter *derrors.HTTPErrorAdapter
	router       chi.Router

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	served chan struct{}
}

// New constructs the server and its routes. No snapshot is loaded yet; call
// Reload or Store before serving.
func New(opts Options) *Server {
	if opts.Recorder == nil {
		opts.Recorder = metrics.NoopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		opts:         opts,
		errorAdapter: derrors.NewHTTPErrorAdapter(opts.Logger),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	monitoring := handlers.NewMonitoringHandlers(s, s.opts.Logger)
	api := handlers.NewAPIHandlers(s, s.opts.Logger)
	reload := handlers.NewReloadHandlers(s, s.opts.Logger)

	r := chi.NewRouter()
	r.Use(smw.Chain(s.opts.Logger, s.errorAdapter, s.opts.Recorder))
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.errorAdapter.WriteErrorResponse(w, req, derrors.NotFoundError("route not found").
			WithContext("path", req.URL.Path).
			Build())
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		s.errorAdapter.WriteErrorResponse(w, req, derrors.ValidationError("invalid HTTP method").
			WithContext("method", req.Method).
			WithContext("path", req.URL.Path).
			Build())
	})

	r.Get("/healthz", monitoring.HandleHealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Get("/nav", api.HandleNav)
		r.Get("/versions", api.HandleVersions)
		r.Get("/pager", api.HandlePager)
		r.Get("/topnav", api.HandleTopNav)
		r.Get("/icons", api.HandleIcons)
		r.Get("/icons/{name}.svg", api.HandleIcon)
		r.Get("/themes/{name}", api.HandleTheme)
		r.Get("/blog", api.HandleBlog)
		r.Get("/roadmap", api.HandleRoadmap)
		r.Get("/types", api.HandleTypes)
		r.Get("/types/{name}", api.HandleType)
		r.Post("/reload", reload.HandleReload)
	})
	if s.opts.Gatherer != nil && s.opts.MetricsPath != "" {
		r.Method(http.MethodGet, s.opts.MetricsPath, metrics.HTTPHandler(s.opts.Gatherer))
	}
	return r
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Snapshot returns the snapshot currently served, or nil before the first
// successful load.
func (s *Server) Snapshot() *site.Snapshot { return s.current.Load() }

// Store replaces the served snapshot.
func (s *Server) Store(snap *site.Snapshot) { s.current.Store(snap) }

// Reload builds a new snapshot and swaps it in. Concurrent calls share one
// build. On failure the previous snapshot stays in service.
func (s *Server) Reload(ctx context.Context, trigger string) (*site.Snapshot, error) {
	if s.opts.Load == nil {
		return nil, derrors.ServerError("reload not configured").Build()
	}
	v, err, _ := s.reloads.Do("reload", func() (any, error) {
		// The build outlives the caller that started it; joined callers
		// must not see its cancellation.
		bctx := observability.WithTrigger(context.WithoutCancel(ctx), trigger)
		start := time.Now()
		snap, err := s.opts.Load(bctx)
		if err != nil {
			s.opts.Recorder.IncReload(trigger, metrics.ResultFailed)
			s.opts.Logger.ErrorContext(bctx, "Reload failed, keeping previous snapshot", logfields.Error(err))
			return nil, err
		}
		s.current.Store(snap)
		result := metrics.ResultSuccess
		if snap.Report != nil && snap.Report.HasErrors() {
			result = metrics.ResultWarning
		}
		s.opts.Recorder.IncReload(trigger, result)
		s.opts.Logger.InfoContext(bctx, "Snapshot reloaded",
			logfields.BuildID(snap.ID),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*site.Snapshot), nil
}

// Start binds the listen address and serves in the background. Binding
// errors are returned immediately.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return derrors.ServerError("server already started").Build()
	}

	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryServer, "failed to bind listen address").
			WithContext("addr", s.opts.Addr).
			Build()
	}
	s.ln = ln
	s.srv = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.served = make(chan struct{})
	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.opts.Logger.Error("preview server error", logfields.Error(err))
		}
	}(s.srv, s.served)

	s.opts.Logger.Info("Preview server started", slog.String("addr", ln.Addr().String()))
	return nil
}

// Addr is the bound address once started, for ":0" listeners.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.served
	s.srv, s.ln = nil, nil
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("preview server shutdown: %w", err)
	}
	<-done
	s.opts.Logger.Info("Preview server stopped")
	return nil
}
