package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Task is one run of a periodic job.
type Task func(context.Context) error

// Scheduler runs a named maintenance task on a fixed interval, such as
// sweeping expired dashboard sessions.
type Scheduler struct {
	logger    *zap.Logger
	name      string
	interval  time.Duration
	task      Task
	stopCh    chan struct{}
	doneCh    chan struct{}
	isRunning bool
	runs      int
	mu        sync.RWMutex
}

// NewScheduler creates a scheduler. The first run happens one interval after Start.
func NewScheduler(logger *zap.Logger, name string, interval time.Duration, task Task) *Scheduler {
	return &Scheduler{
		logger:   logger.With(zap.String("job", name)),
		name:     name,
		interval: interval,
		task:     task,
	}
}

// Name returns the job name.
func (s *Scheduler) Name() string {
	return s.name
}

// Start launches the ticker loop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return ErrSchedulerAlreadyRunning
	}
	if s.interval <= 0 {
		return ErrInvalidInterval
	}

	s.isRunning = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	go s.run(ctx, s.stopCh, s.doneCh)

	s.logger.Info("Scheduler started", zap.Duration("interval", s.interval))
	return nil
}

// Stop halts the loop and waits for an in-flight run to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	stopCh, doneCh := s.stopCh, s.doneCh
	s.mu.Unlock()

	close(stopCh)
	<-doneCh

	s.logger.Info("Scheduler stopped")
	return nil
}

// IsRunning reports whether the loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Runs returns how many times the task has been executed.
func (s *Scheduler) Runs() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runs
}

func (s *Scheduler) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)
	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler context canceled")
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.execute(ctx)
		}
	}
}

// execute runs the task with a deadline shorter than the interval so runs never overlap.
func (s *Scheduler) execute(ctx context.Context) {
	budget := s.interval
	if budget > 2*time.Second {
		budget -= time.Second
	}
	taskCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	err := s.task(taskCtx)

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Scheduled task failed", zap.Error(err))
		return
	}
	s.logger.Debug("Scheduled task completed")
}
