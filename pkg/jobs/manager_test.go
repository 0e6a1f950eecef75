package jobs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLifecycle(t *testing.T) {
	m := NewManager(time.Hour)
	userID := uuid.New()

	job := m.Create(userID)
	assert.Equal(t, StatusPending, job.Status)
	assert.Equal(t, userID, job.UserID)

	require.True(t, m.Start(job.ID))
	m.SetProgress(job.ID, 45, "primary failed, switching to secondary")

	got := m.Get(job.ID)
	require.NotNil(t, got)
	assert.Equal(t, StatusProcessing, got.Status)
	assert.Equal(t, 45, got.Progress.Percentage)
	assert.Equal(t, "primary failed, switching to secondary", got.Progress.Message)

	require.True(t, m.Complete(job.ID, map[string]any{"report_id": "r1"}))
	got = m.Get(job.ID)
	require.NotNil(t, got)
	assert.Equal(t, StatusCompleted, got.Status)
	assert.Equal(t, "r1", got.Result["report_id"])
	assert.Equal(t, 100, got.Progress.Percentage)
}

func TestStartRequiresPending(t *testing.T) {
	m := NewManager(time.Hour)
	job := m.Create(uuid.New())

	require.True(t, m.Start(job.ID))
	assert.False(t, m.Start(job.ID), "double start must be refused")
	assert.False(t, m.Start(uuid.New()), "unknown id must be refused")
}

func TestTerminalStateIsFinal(t *testing.T) {
	m := NewManager(time.Hour)
	job := m.Create(uuid.New())
	m.Start(job.ID)

	require.True(t, m.Fail(job.ID, "provider exhausted"))

	// A late completion cannot clobber the recorded failure.
	assert.False(t, m.Complete(job.ID, map[string]any{"report_id": "r1"}))
	m.SetProgress(job.ID, 99, "late progress")

	got := m.Get(job.ID)
	require.NotNil(t, got)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "provider exhausted", got.Error)
	assert.Nil(t, got.Result)
	assert.NotEqual(t, 99, got.Progress.Percentage)
}

func TestGetUnknownReturnsNil(t *testing.T) {
	m := NewManager(time.Hour)
	assert.Nil(t, m.Get(uuid.New()))
}

func TestTerminalJobExpires(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	job := m.Create(uuid.New())
	m.Start(job.ID)
	m.Complete(job.ID, nil)

	require.NotNil(t, m.Get(job.ID))
	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, m.Get(job.ID), "expired terminal job must read as gone")
}

func TestRunningJobNeverExpires(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	job := m.Create(uuid.New())
	m.Start(job.ID)

	time.Sleep(30 * time.Millisecond)
	assert.NotNil(t, m.Get(job.ID), "TTL applies to terminal jobs only")
}

func TestSweepRemovesExpired(t *testing.T) {
	m := NewManager(time.Nanosecond)
	job := m.Create(uuid.New())
	m.Start(job.ID)
	m.Fail(job.ID, "x")

	live := m.Create(uuid.New())

	time.Sleep(5 * time.Millisecond)
	m.sweep()

	assert.Equal(t, 1, m.Count())
	assert.NotNil(t, m.Get(live.ID))
}

func TestGetReturnsSnapshot(t *testing.T) {
	m := NewManager(time.Hour)
	job := m.Create(uuid.New())

	got := m.Get(job.ID)
	got.Status = StatusFailed

	assert.Equal(t, StatusPending, m.Get(job.ID).Status)
}
