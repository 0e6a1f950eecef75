// Package events carries the SSE event vocabulary and the per-session
// registry that delivers events to attached client streams.
package events

// EventType identifies one kind of server-sent event.
type EventType string

const (
	EventSessionStart       EventType = "session_start"
	EventMessageStart       EventType = "message_start"
	EventText               EventType = "text"
	EventToolStart          EventType = "tool_start"
	EventToolComplete       EventType = "tool_complete"
	EventPlotResult         EventType = "plot_result"
	EventThumbnailUpdate    EventType = "thumbnail_update"
	EventTableResult        EventType = "table_result"
	EventMessageEnd         EventType = "message_end"
	EventError              EventType = "error"
	EventPatientUnavailable EventType = "patient_unavailable"
	EventSessionExpired     EventType = "session_expired"
	EventStatus             EventType = "status"
)

// Event is one server-sent event. MessageID is set on every event that is
// part of an assistant turn and subject to the finalization guard.
type Event struct {
	Type      EventType      `json:"type"`
	MessageID string         `json:"message_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
}

// NewEvent builds an event without a message id.
func NewEvent(t EventType, data map[string]any) Event {
	return Event{Type: t, Data: data}
}

// NewMessageEvent builds an event framed by a turn.
func NewMessageEvent(t EventType, messageID string, data map[string]any) Event {
	return Event{Type: t, MessageID: messageID, Data: data}
}

// ErrorEvent builds the typed failure event. debug is omitted in production.
func ErrorEvent(messageID, code, message, debug string) Event {
	data := map[string]any{
		"code":    code,
		"message": message,
	}
	if debug != "" {
		data["debug"] = debug
	}
	return Event{Type: EventError, MessageID: messageID, Data: data}
}

// Error codes surfaced through SSE error events.
const (
	CodeIterationLimit = "ITERATION_LIMIT_EXCEEDED"
	CodeSessionBusy    = "SESSION_BUSY"
	CodeLLMError       = "LLM_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
)
