package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsSubmittedTasks(t *testing.T) {
	p := NewPool(2, 8)
	p.Start(context.Background())

	var ran atomic.Int32
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		ok := p.Submit(Task{JobID: uuid.New(), Run: func(context.Context) {
			if ran.Add(1) == 5 {
				close(done)
			}
		}})
		require.True(t, ok)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tasks did not run")
	}
	p.Stop()
	assert.Equal(t, int32(5), ran.Load())
}

func TestPoolSubmitRefusesWhenFull(t *testing.T) {
	// One worker, depth one, worker blocked: the second queued task fills
	// the channel and the third submit must be refused, not block.
	p := NewPool(1, 1)
	p.Start(context.Background())

	release := make(chan struct{})
	started := make(chan struct{})
	require.True(t, p.Submit(Task{JobID: uuid.New(), Run: func(context.Context) {
		close(started)
		<-release
	}}))
	<-started

	require.True(t, p.Submit(Task{JobID: uuid.New(), Run: func(context.Context) {}}))
	assert.False(t, p.Submit(Task{JobID: uuid.New(), Run: func(context.Context) {}}))

	close(release)
	p.Stop()
}

func TestPoolStopWaitsForInflight(t *testing.T) {
	p := NewPool(1, 4)
	p.Start(context.Background())

	var finished atomic.Bool
	started := make(chan struct{})
	require.True(t, p.Submit(Task{JobID: uuid.New(), Run: func(context.Context) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	}}))
	<-started

	p.Stop()
	assert.True(t, finished.Load(), "Stop must wait for the in-flight task")
}
