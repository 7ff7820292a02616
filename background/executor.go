// Package background runs detached tasks on a small fixed set of goroutines.
//
// Callers hand a Task to Submit and move on; nothing in the submitting flow
// waits for it. Whoever owns the Executor decides whether Shutdown drains the
// queue before the process exits or whether pending work is simply abandoned.
package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Task is one unit of detached work. ctx is cancelled when a Shutdown
// times out.
type Task func(ctx context.Context) error

// Sentinel errors returned by the executor.
var (
	ErrClosed          = errors.New("background executor is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; running tasks were cancelled")
)

// Config holds executor construction parameters.
type Config struct {
	// Workers is the number of goroutines consuming tasks.
	Workers int

	// QueueSize is the capacity of the task channel. Zero means Submit
	// blocks until a worker is free.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for queued and running
	// tasks before cancelling them. Defaults to 5s.
	ShutdownTimeout time.Duration

	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.QueueSize < 0 {
		c.QueueSize = 0
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Stats is a snapshot of executor counters.
type Stats struct {
	Submitted int64
	Started   int64
	Succeeded int64
	Failed    int64
	Dropped   int64
}

// Executor owns the worker goroutines.
type Executor struct {
	cfg   Config
	log   *zap.Logger
	tasks chan namedTask
	wg    sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	// sending is read-held across every send on tasks; Shutdown takes it
	// exclusively before closing tasks. stopping wakes parked senders first.
	sending  sync.RWMutex
	stopping chan struct{}
	closed   atomic.Bool
	shutdown sync.Once
	err      error

	submitted, started, succeeded, failed, dropped atomic.Int64
}

type namedTask struct {
	name string
	run  Task
}

// New starts cfg.Workers goroutines. They live until Shutdown.
func New(cfg Config) *Executor {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	e := &Executor{
		cfg:      cfg,
		log:      cfg.Logger.Named("background"),
		tasks:    make(chan namedTask, cfg.QueueSize),
		stopping: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
	e.log.Debug("starting workers",
		zap.Int("workers", cfg.Workers),
		zap.Int("queue", cfg.QueueSize),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout))

	for i := 0; i < cfg.Workers; i++ {
		e.wg.Add(1)
		go e.work(i)
	}
	return e
}

// Submit enqueues task under name and returns as soon as it is queued. It
// blocks only while the queue is full, and gives up when ctx is done or
// Shutdown begins, returning ErrClosed in the latter case.
func (e *Executor) Submit(ctx context.Context, name string, task Task) error {
	e.sending.RLock()
	defer e.sending.RUnlock()

	if e.closed.Load() {
		e.dropped.Add(1)
		return ErrClosed
	}
	e.submitted.Add(1)

	select {
	case e.tasks <- namedTask{name: name, run: task}:
		e.log.Debug("task queued", zap.String("task", name))
		return nil
	case <-e.stopping:
		e.dropped.Add(1)
		return ErrClosed
	case <-ctx.Done():
		e.dropped.Add(1)
		return fmt.Errorf("submit %s: %w", name, ctx.Err())
	}
}

// Shutdown stops accepting tasks, lets queued tasks finish, and cancels
// whatever is still running after ShutdownTimeout. Repeated calls return the
// result of the first.
func (e *Executor) Shutdown() error {
	e.shutdown.Do(func() {
		e.closed.Store(true)
		close(e.stopping)

		e.sending.Lock()
		close(e.tasks)
		e.sending.Unlock()

		done := make(chan struct{})
		go func() {
			e.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(e.cfg.ShutdownTimeout):
			e.log.Warn("shutdown timeout elapsed, cancelling tasks",
				zap.Duration("timeout", e.cfg.ShutdownTimeout))
			e.cancel()
			<-done
			e.err = ErrShutdownTimeout
		}
		e.cancel()

		s := e.Stats()
		e.log.Debug("executor stopped",
			zap.Int64("submitted", s.Submitted),
			zap.Int64("started", s.Started),
			zap.Int64("succeeded", s.Succeeded),
			zap.Int64("failed", s.Failed),
			zap.Int64("dropped", s.Dropped))
	})
	return e.err
}

// Stats returns the current counters. Fields are individually consistent.
func (e *Executor) Stats() Stats {
	return Stats{
		Submitted: e.submitted.Load(),
		Started:   e.started.Load(),
		Succeeded: e.succeeded.Load(),
		Failed:    e.failed.Load(),
		Dropped:   e.dropped.Load(),
	}
}

func (e *Executor) work(id int) {
	defer e.wg.Done()
	log := e.log.With(zap.Int("worker", id))

	for t := range e.tasks {
		if e.ctx.Err() != nil {
			e.failed.Add(1)
			log.Debug("skipping task after cancellation", zap.String("task", t.name))
			continue
		}
		e.started.Add(1)
		if err := e.run(t); err != nil {
			e.failed.Add(1)
			log.Warn("task failed", zap.String("task", t.name), zap.Error(err))
			continue
		}
		e.succeeded.Add(1)
	}
}

// run executes one task. A panicking task counts as failed instead of taking
// the worker and the process down with it.
func (e *Executor) run(t namedTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", t.name, r)
		}
	}()
	return t.run(e.ctx)
}
