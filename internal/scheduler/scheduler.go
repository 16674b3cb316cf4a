// Package scheduler enqueues jobs on a worker pool at fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/CraftValue_Go/internal/logger"
	"github.com/osse101/CraftValue_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop is called or ctx is done.
// A tick is skipped when the pool queue is full.
func (s *Scheduler) Schedule(ctx context.Context, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.Enqueue(job) {
					logger.FromContext(ctx).Warn(worker.LogMsgWorkerJobDropped, "job", job.Name())
				}
			case <-ctx.Done():
				return
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
