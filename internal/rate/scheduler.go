package rate

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Loader is the part of the Store the refresh job needs.
type Loader interface {
	Load(ctx context.Context) error
}

// Scheduler periodically reloads the rate snapshot.
type Scheduler struct {
	loader          Loader
	refreshInterval time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if loadErr := s.loader.Load(jobCtx); loadErr != nil {
			logrus.Errorf("Refresh rates job %s failed: %v", execID, loadErr)
			return
		}
		logrus.Debugf("Refresh rates job %s done", execID)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		_ = scheduler.Shutdown()
		return err
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(loader Loader, refreshInterval time.Duration) *Scheduler {
	if refreshInterval <= 0 {
		refreshInterval = 30 * time.Minute
	}
	return &Scheduler{loader: loader, refreshInterval: refreshInterval}
}
