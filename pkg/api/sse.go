package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/labtrail/labtrail/pkg/events"
)

// sseSink writes registry events to one HTTP response as server-sent
// events. Send and Close may race with each other; writes are serialized.
type sseSink struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	done    chan struct{}
	closed  bool
}

func newSSESink(w http.ResponseWriter) (*sseSink, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	return &sseSink{w: w, flusher: flusher, done: make(chan struct{})}, nil
}

// Send writes one event frame. Called from turn goroutines via the registry.
func (s *sseSink) Send(event events.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return fmt.Errorf("sink closed")
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event.Type, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Close ends the stream; the serving handler returns when Done fires.
func (s *sseSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}

// Done fires when the sink has been closed by the registry (replacement,
// session teardown, expiry).
func (s *sseSink) Done() <-chan struct{} {
	return s.done
}
