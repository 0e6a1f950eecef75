// Package jobs provides the in-process registry for long-running background
// work (ingestion) and the bounded worker pool that executes it.
package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is a job's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// terminal reports whether no further transitions are allowed.
func (s Status) terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Progress is the small per-job progress record polled by clients.
type Progress struct {
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}

// Job is one long-task descriptor. Instances handed out by the manager are
// snapshots; all mutation happens through manager methods.
type Job struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"-"`
	Status    Status         `json:"status"`
	Progress  Progress       `json:"progress"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// sweepInterval is how often expired terminal jobs are collected.
const sweepInterval = 5 * time.Minute

// Manager tracks jobs in memory. Terminal jobs expire after the TTL; lookups
// of expired or unknown ids return nil.
type Manager struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*Job
	ttl  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager creates a job manager with the given terminal-state TTL.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		jobs: make(map[uuid.UUID]*Job),
		ttl:  ttl,
	}
}

// Create registers a pending job owned by userID.
func (m *Manager) Create(userID uuid.UUID) *Job {
	now := time.Now()
	job := &Job{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.jobs[job.ID] = job
	m.mu.Unlock()

	return snapshot(job)
}

// Get returns a snapshot, or nil for unknown and expired ids.
func (m *Manager) Get(id uuid.UUID) *Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, ok := m.jobs[id]
	if !ok {
		return nil
	}
	if job.Status.terminal() && time.Since(job.UpdatedAt) > m.ttl {
		return nil // expired; the sweeper collects it shortly
	}
	return snapshot(job)
}

// Start moves a pending job to processing. Returns false when the job is
// unknown or already past pending.
func (m *Manager) Start(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok || job.Status != StatusPending {
		return false
	}
	job.Status = StatusProcessing
	job.UpdatedAt = time.Now()
	return true
}

// SetProgress updates the progress record. Ignored once terminal.
func (m *Manager) SetProgress(id uuid.UUID, percentage int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok || job.Status.terminal() {
		return
	}
	job.Progress = Progress{Percentage: percentage, Message: message}
	job.UpdatedAt = time.Now()
}

// Complete moves the job to completed with its result payload. Once a job is
// terminal the transition is ignored, so a late async completion cannot
// clobber a recorded failure.
func (m *Manager) Complete(id uuid.UUID, result map[string]any) bool {
	return m.finish(id, StatusCompleted, result, "")
}

// Fail moves the job to failed with the error message. Ignored once terminal.
func (m *Manager) Fail(id uuid.UUID, message string) bool {
	return m.finish(id, StatusFailed, nil, message)
}

func (m *Manager) finish(id uuid.UUID, status Status, result map[string]any, errMsg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[id]
	if !ok || job.Status.terminal() {
		return false
	}
	job.Status = status
	job.Result = result
	job.Error = errMsg
	job.Progress = Progress{Percentage: 100, Message: string(status)}
	job.UpdatedAt = time.Now()
	return true
}

// Count reports live jobs. Used by health reporting and tests.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.jobs)
}

// Start launches the background expiry sweeper.
func (m *Manager) StartSweeper(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go m.run(ctx)

	slog.Info("Job manager started", "ttl", m.ttl)
}

// Stop signals the sweeper to exit and waits for it to finish.
func (m *Manager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	slog.Info("Job manager stopped")
}

func (m *Manager) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	now := time.Now()

	m.mu.Lock()
	removed := 0
	for id, job := range m.jobs {
		if job.Status.terminal() && now.Sub(job.UpdatedAt) > m.ttl {
			delete(m.jobs, id)
			removed++
		}
	}
	m.mu.Unlock()

	if removed > 0 {
		slog.Info("Swept expired jobs", "count", removed)
	}
}

func snapshot(job *Job) *Job {
	dup := *job
	return &dup
}
