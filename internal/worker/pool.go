// Package worker runs background jobs on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"

	"github.com/osse101/CraftValue_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs run with a context derived from ctx that is
// cancelled by Stop.
func (p *Pool) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)
	for {
		select {
		case job := <-p.jobQueue:
			if err := job.Process(ctx); err != nil {
				log.Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// Enqueue adds a job without blocking. It returns false when the queue is full.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}
