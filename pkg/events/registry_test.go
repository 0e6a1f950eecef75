package events

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (s *recordingSink) Send(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("sink closed")
	}
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *recordingSink) recorded() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func (s *recordingSink) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func TestEmitWithoutSinkIsDropped(t *testing.T) {
	r := NewRegistry()
	// Must not panic or block.
	r.Emit(uuid.New(), NewEvent(EventText, map[string]any{"content": "x"}))
}

func TestAttachLastWriterWins(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	stale := &recordingSink{}
	fresh := &recordingSink{}

	r.Attach(id, stale)
	r.Attach(id, fresh)

	assert.True(t, stale.isClosed(), "displaced sink must be closed")
	assert.False(t, fresh.isClosed())

	r.Emit(id, NewEvent(EventText, map[string]any{"content": "hello"}))
	assert.Empty(t, stale.recorded())
	require.Len(t, fresh.recorded(), 1)
	assert.Equal(t, EventText, fresh.recorded()[0].Type)
}

func TestFinalizeDropsStragglers(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	sink := &recordingSink{}
	r.Attach(id, sink)

	r.Emit(id, NewMessageEvent(EventMessageStart, "msg-1", nil))
	r.Emit(id, NewMessageEvent(EventMessageEnd, "msg-1", nil))
	r.Finalize(id, "msg-1")

	// A duplicate message_end and a straggling text chunk are both dropped.
	r.Emit(id, NewMessageEvent(EventMessageEnd, "msg-1", nil))
	r.Emit(id, NewMessageEvent(EventText, "msg-1", map[string]any{"content": "late"}))

	// Events for the next message still flow.
	r.Emit(id, NewMessageEvent(EventMessageStart, "msg-2", nil))

	got := sink.recorded()
	require.Len(t, got, 3)
	assert.Equal(t, EventMessageStart, got[0].Type)
	assert.Equal(t, EventMessageEnd, got[1].Type)
	assert.Equal(t, "msg-2", got[2].MessageID)
}

func TestFinalizeSurvivesReconnect(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	first := &recordingSink{}
	r.Attach(id, first)
	r.Finalize(id, "msg-1")

	second := &recordingSink{}
	r.Attach(id, second)

	r.Emit(id, NewMessageEvent(EventText, "msg-1", map[string]any{"content": "late"}))
	assert.Empty(t, second.recorded())
}

func TestFinalizeWithoutSink(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	r.Finalize(id, "msg-1")

	sink := &recordingSink{}
	r.Attach(id, sink)
	r.Emit(id, NewMessageEvent(EventText, "msg-1", nil))
	assert.Empty(t, sink.recorded())
}

func TestEventsWithoutMessageIDBypassGuard(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	sink := &recordingSink{}
	r.Attach(id, sink)
	r.Finalize(id, "msg-1")

	r.Emit(id, NewEvent(EventStatus, map[string]any{"state": "thinking"}))
	require.Len(t, sink.recorded(), 1)
}

func TestCloseSendsSessionExpired(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	sink := &recordingSink{}
	r.Attach(id, sink)

	r.Close(id, "session expired")

	got := sink.recorded()
	require.Len(t, got, 1)
	assert.Equal(t, EventSessionExpired, got[0].Type)
	assert.Equal(t, "session expired", got[0].Data["reason"])
	assert.True(t, sink.isClosed())
	assert.False(t, r.Attached(id))

	// Second close is a no-op.
	r.Close(id, "again")
	assert.Len(t, sink.recorded(), 1)
}

func TestDetachLeavesSinkOpen(t *testing.T) {
	r := NewRegistry()
	id := uuid.New()
	sink := &recordingSink{}
	r.Attach(id, sink)

	r.Detach(id)
	assert.False(t, sink.isClosed())
	assert.False(t, r.Attached(id))
}

func TestErrorEventShape(t *testing.T) {
	e := ErrorEvent("msg-1", CodeLLMError, "provider unavailable", "")
	assert.Equal(t, EventError, e.Type)
	assert.Equal(t, "msg-1", e.MessageID)
	assert.Equal(t, CodeLLMError, e.Data["code"])
	assert.NotContains(t, e.Data, "debug")

	withDebug := ErrorEvent("msg-1", CodeInternal, "boom", "stack detail")
	assert.Equal(t, "stack detail", withDebug.Data["debug"])
}
