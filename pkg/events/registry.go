package events

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Sink is one client event stream. Implementations must tolerate Send after
// Close by returning an error rather than panicking.
type Sink interface {
	Send(event Event) error
	Close()
}

// entry pairs a session's sink with its finalization guard.
type entry struct {
	sink Sink

	// finalized message ids; events carrying one of these are dropped.
	finalized map[string]struct{}
}

// Registry maps session ids to their attached SSE sinks. It is the only
// writer to response streams; components emit by session id and never hold
// stream handles. Attach applies last-writer-wins so a reconnecting client
// displaces its stale stream.
type Registry struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uuid.UUID]*entry)}
}

// Attach binds sink to the session, closing any previously attached sink.
// The finalization guard carries over so a reconnect cannot resurrect events
// of an already-finalized message.
func (r *Registry) Attach(sessionID uuid.UUID, sink Sink) {
	r.mu.Lock()
	previous := r.entries[sessionID]
	next := &entry{sink: sink, finalized: make(map[string]struct{})}
	if previous != nil {
		next.finalized = previous.finalized
	}
	r.entries[sessionID] = next
	r.mu.Unlock()

	if previous != nil {
		previous.sink.Close()
		slog.Debug("Displaced previous event sink", "session_id", sessionID)
	}
}

// Emit delivers the event to the session's sink. Events for unknown sessions,
// closed sinks, or finalized message ids are dropped silently; emission order
// per session is the caller's call order.
func (r *Registry) Emit(sessionID uuid.UUID, event Event) {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if ok && event.MessageID != "" {
		if _, done := e.finalized[event.MessageID]; done {
			ok = false
		}
	}
	var sink Sink
	if ok {
		sink = e.sink
	}
	r.mu.Unlock()

	if sink == nil {
		return
	}
	if err := sink.Send(event); err != nil {
		slog.Debug("Dropped event for closed sink",
			"session_id", sessionID, "type", event.Type)
	}
}

// Finalize records that messageID is complete. Every later event carrying it
// is dropped. The guard survives even when no sink is attached.
func (r *Registry) Finalize(sessionID uuid.UUID, messageID string) {
	if messageID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{finalized: make(map[string]struct{})}
		r.entries[sessionID] = e
	}
	e.finalized[messageID] = struct{}{}
}

// Detach removes the entry without closing the sink. Used when the transport
// already tore the stream down (client disconnect).
func (r *Registry) Detach(sessionID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, sessionID)
}

// Close sends a synthetic session_expired if a sink is still attached, then
// removes the entry. Safe to call repeatedly.
func (r *Registry) Close(sessionID uuid.UUID, reason string) {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	delete(r.entries, sessionID)
	r.mu.Unlock()

	if !ok || e.sink == nil {
		return
	}
	_ = e.sink.Send(NewEvent(EventSessionExpired, map[string]any{"reason": reason}))
	e.sink.Close()
}

// Attached reports whether the session currently has a sink.
func (r *Registry) Attached(sessionID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	return ok && e.sink != nil
}
