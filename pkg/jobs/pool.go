package jobs

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Task is one unit of background work bound to a job id.
type Task struct {
	JobID uuid.UUID
	Run   func(ctx context.Context)
}

// Pool is a bounded worker pool for ingestion tasks. Uploads enqueue and
// return immediately; workers drain the queue. Stop waits for in-flight
// tasks so shutdown never abandons a half-written report.
type Pool struct {
	tasks    chan Task
	workers  int
	stopOnce sync.Once
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	started  bool
}

// NewPool creates a pool with the given worker count and queue depth.
func NewPool(workers, queueDepth int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		tasks:   make(chan Task, queueDepth),
		workers: workers,
	}
}

// Start spawns the worker goroutines. Safe to call once; later calls are
// no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	slog.Info("Ingestion worker pool started", "workers", p.workers)
}

// Submit enqueues a task. Returns false when the queue is full or the pool
// is stopped; the caller should fail the job rather than block the request.
func (p *Pool) Submit(task Task) bool {
	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for workers to finish their current tasks.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.tasks)
		p.wg.Wait()
		if p.cancel != nil {
			p.cancel()
		}
		slog.Info("Ingestion worker pool stopped")
	})
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		if ctx.Err() != nil {
			return
		}
		slog.Debug("Worker picked up job", "worker", id, "job_id", task.JobID)
		task.Run(ctx)
	}
}
