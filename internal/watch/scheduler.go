package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Scheduler reloads the site at a fixed interval, for filesystems that do
// not deliver change notifications.
type Scheduler struct {
	scheduler gocron.Scheduler
	reloader  Reloader
	logger    *slog.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	stopOnce  sync.Once
}

// NewScheduler creates a scheduler that reloads every interval.
func NewScheduler(reloader Reloader, interval time.Duration, logger *slog.Logger) (*Scheduler, error) {
	if reloader == nil {
		return nil, derrors.ValidationError("reloader is required").Build()
	}
	if interval <= 0 {
		return nil, derrors.ValidationError("reload interval must be > 0").
			WithContext("interval", interval.String()).
			Build()
	}
	if logger == nil {
		logger = slog.Default()
	}

	gs, err := gocron.NewScheduler()
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryRuntime, "failed to create gocron scheduler").Build()
	}
	s := &Scheduler{scheduler: gs, reloader: reloader, logger: logger}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	if _, err := gs.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.reload),
		gocron.WithName("scheduled-reload"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		s.cancel()
		_ = gs.Shutdown()
		return nil, derrors.WrapError(err, derrors.CategoryRuntime, "failed to create reload job").
			WithContext("interval", interval.String()).
			Build()
	}
	return s, nil
}

// Start begins running the reload job. Reloads stop when ctx is canceled or
// Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	stop := context.AfterFunc(ctx, s.cancel)
	go func() {
		<-s.ctx.Done()
		stop()
	}()
	s.logger.Info("Starting reload scheduler")
	s.scheduler.Start()
}

// Stop shuts the scheduler down and waits for a running reload.
func (s *Scheduler) Stop(context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping reload scheduler")
		s.cancel()
		err = s.scheduler.Shutdown()
	})
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryRuntime, "failed to stop reload scheduler").Build()
	}
	return nil
}

func (s *Scheduler) reload() {
	if s.ctx.Err() != nil {
		return
	}
	snap, err := s.reloader.Reload(s.ctx, TriggerSchedule)
	if err != nil {
		s.logger.Error("Scheduled reload failed", logfields.Error(err))
		return
	}
	s.logger.Debug("Scheduled reload complete", logfields.BuildID(snap.ID))
}
