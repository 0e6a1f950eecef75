// Package session provides the in-memory conversational session store with
// idle-TTL expiry and a per-session processing lock.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labtrail/labtrail/pkg/models"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// maxMessages hard-caps a session's log; the token pruner keeps the working
// set far below this.
const maxMessages = 500

// sweepInterval is how often expired sessions are collected.
const sweepInterval = time.Minute

// Store manages sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration

	// onExpire is invoked (outside the lock) for every swept session.
	onExpire func(id uuid.UUID)

	cancel context.CancelFunc
	done   chan struct{}
}

// NewStore creates a session store with the given idle TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
	}
}

// OnExpire registers the expiry hook. Must be called before Start.
func (s *Store) OnExpire(hook func(id uuid.UUID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpire = hook
}

// Create registers a new session for the user.
func (s *Store) Create(userID uuid.UUID, selectedPatientID *uuid.UUID, onboarding *models.OnboardingContext) *Session {
	now := time.Now()
	session := &Session{
		ID:                uuid.New(),
		UserID:            userID,
		SelectedPatientID: selectedPatientID,
		Onboarding:        onboarding,
		Messages:          []models.ConversationMessage{},
		CreatedAt:         now,
		ExpiresAt:         now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.Clone()
}

// Peek returns a snapshot without extending the TTL. Used for cheap
// existence and ownership checks.
func (s *Store) Peek(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

// Get returns a snapshot and renews the idle TTL.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	session.ExpiresAt = time.Now().Add(s.ttl)
	return session.Clone(), nil
}

// TryAcquireLock atomically claims the session's processing lock. A false
// return means another turn is running; callers surface a busy signal and
// must not mutate anything.
func (s *Store) TryAcquireLock(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok || session.Processing {
		return false
	}
	session.Processing = true
	return true
}

// ReleaseLock relinquishes the processing lock. Safe on deleted sessions.
func (s *Store) ReleaseLock(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[id]; ok {
		session.Processing = false
	}
}

// Delete removes the session. Idempotent; reports whether it existed.
func (s *Store) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// AppendMessage appends one entry to the session's bounded log.
func (s *Store) AppendMessage(id uuid.UUID, msg models.ConversationMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	session.Messages = append(session.Messages, msg)
	if len(session.Messages) > maxMessages {
		session.Messages = session.Messages[len(session.Messages)-maxMessages:]
	}
	return nil
}

// MarkDisconnected records that the client's stream dropped. The turn keeps
// running; the registry drops its events.
func (s *Store) MarkDisconnected(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	session.Disconnected = true
	return nil
}

// Update applies fn to the live session under the store lock. fn must be
// quick and must not call back into the store.
func (s *Store) Update(id uuid.UUID, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	fn(session)
	return nil
}

// Count reports live sessions. Used by health reporting and tests.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Start launches the background expiry sweeper.
func (s *Store) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Session store started", "ttl", s.ttl)
}

// Stop signals the sweeper to exit and waits for it to finish.
func (s *Store) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Session store stopped")
}

func (s *Store) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep deletes expired sessions and fires the expiry hook outside the lock.
func (s *Store) sweep() {
	now := time.Now()

	s.mu.Lock()
	var expired []uuid.UUID
	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	hook := s.onExpire
	s.mu.Unlock()

	if len(expired) > 0 {
		slog.Info("Swept expired sessions", "count", len(expired))
	}
	if hook == nil {
		return
	}
	for _, id := range expired {
		hook(id)
	}
}
