package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/pkg/models"
)

func TestCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	patientID := uuid.New()

	sess := store.Create(uuid.New(), &patientID, &models.OnboardingContext{PatientName: "Jane"})

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	require.NotNil(t, got.SelectedPatientID)
	assert.Equal(t, patientID, *got.SelectedPatientID)
	assert.Equal(t, "Jane", got.Onboarding.PatientName)
	assert.False(t, got.Initialized)

	_, err = store.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetRenewsTTLPeekDoesNot(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	before, err := store.Peek(sess.ID)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	_, err = store.Peek(sess.ID)
	require.NoError(t, err)
	after, err := store.Peek(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, before.ExpiresAt, after.ExpiresAt, "Peek must not extend the TTL")

	_, err = store.Get(sess.ID)
	require.NoError(t, err)
	renewed, err := store.Peek(sess.ID)
	require.NoError(t, err)
	assert.True(t, renewed.ExpiresAt.After(before.ExpiresAt), "Get must extend the TTL")
}

func TestProcessingLockIsExclusive(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	require.True(t, store.TryAcquireLock(sess.ID))
	assert.False(t, store.TryAcquireLock(sess.ID))

	store.ReleaseLock(sess.ID)
	assert.True(t, store.TryAcquireLock(sess.ID))

	assert.False(t, store.TryAcquireLock(uuid.New()), "unknown session cannot be locked")
}

func TestLockUnderContention(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	var won sync.Map
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if store.TryAcquireLock(sess.ID) {
				won.Store(i, true)
			}
		}(i)
	}
	wg.Wait()

	winners := 0
	won.Range(func(any, any) bool { winners++; return true })
	assert.Equal(t, 1, winners, "exactly one goroutine may hold the lock")
}

func TestReleaseLockOnDeletedSession(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)
	store.TryAcquireLock(sess.ID)
	store.Delete(sess.ID)

	// Must not panic; the deferred release of a finished turn races with
	// teardown.
	store.ReleaseLock(sess.ID)
}

func TestAppendMessageCapsLog(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	for i := 0; i < maxMessages+10; i++ {
		err := store.AppendMessage(sess.ID, models.ConversationMessage{
			Role:    models.RoleUser,
			Content: fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	got, err := store.Peek(sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, maxMessages)
	assert.Equal(t, "message 10", got.Messages[0].Content, "oldest entries are shed first")
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)
	require.NoError(t, store.AppendMessage(sess.ID, models.ConversationMessage{Role: models.RoleUser, Content: "hi"}))

	snap, err := store.Get(sess.ID)
	require.NoError(t, err)
	snap.Messages[0].Content = "tampered"
	snap.SystemPrompt = "tampered"

	fresh, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", fresh.Messages[0].Content)
	assert.Empty(t, fresh.SystemPrompt)
}

func TestUpdateMutatesLiveSession(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	err := store.Update(sess.ID, func(s *Session) {
		s.Initialized = true
		s.SystemPrompt = "prompt"
		s.Onboarding = nil
	})
	require.NoError(t, err)

	got, err := store.Peek(sess.ID)
	require.NoError(t, err)
	assert.True(t, got.Initialized)
	assert.Equal(t, "prompt", got.SystemPrompt)
	assert.Nil(t, got.Onboarding)

	assert.ErrorIs(t, store.Update(uuid.New(), func(*Session) {}), ErrNotFound)
}

func TestDeleteIdempotent(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create(uuid.New(), nil, nil)

	assert.True(t, store.Delete(sess.ID))
	assert.False(t, store.Delete(sess.ID))
	_, err := store.Get(sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSweepFiresExpiryHook(t *testing.T) {
	store := NewStore(time.Millisecond)

	var mu sync.Mutex
	var expired []uuid.UUID
	store.OnExpire(func(id uuid.UUID) {
		mu.Lock()
		expired = append(expired, id)
		mu.Unlock()
	})

	sess := store.Create(uuid.New(), nil, nil)
	time.Sleep(10 * time.Millisecond)
	store.sweep()

	assert.Equal(t, 0, store.Count())
	mu.Lock()
	defer mu.Unlock()
	require.Len(t, expired, 1)
	assert.Equal(t, sess.ID, expired[0])
}
