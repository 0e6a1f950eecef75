package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/session"
)

// scriptedLLM replays canned chunk sequences, one per Generate call, and
// records every input it saw.
type scriptedLLM struct {
	mu      sync.Mutex
	scripts [][]llm.Chunk
	inputs  []*llm.GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	s.inputs = append(s.inputs, input)
	var script []llm.Chunk
	if len(s.scripts) > 0 {
		script = s.scripts[0]
		s.scripts = s.scripts[1:]
	} else {
		script = []llm.Chunk{&llm.TextChunk{Content: "done"}}
	}
	s.mu.Unlock()

	out := make(chan llm.Chunk, len(script))
	for _, c := range script {
		out <- c
	}
	close(out)
	return out, nil
}

func (s *scriptedLLM) Structured(context.Context, *llm.StructuredInput, any) error {
	return errors.New("not scripted")
}

func (s *scriptedLLM) Close() error { return nil }

func (s *scriptedLLM) seenInputs() []*llm.GenerateInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*llm.GenerateInput(nil), s.inputs...)
}

type stubTools struct {
	mu      sync.Mutex
	outcome *Outcome
	err     error
	calls   []models.ToolCall
}

func (s *stubTools) Definitions() []models.ToolDefinition {
	return []models.ToolDefinition{{Name: ToolExecuteSQL, Parameters: json.RawMessage(`{}`)}}
}

func (s *stubTools) Execute(_ context.Context, _ *TurnContext, call models.ToolCall) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
	if s.err != nil {
		return nil, s.err
	}
	if s.outcome != nil {
		return s.outcome, nil
	}
	return &Outcome{Response: `{"rows":[]}`}, nil
}

type stubSnapshot struct{}

func (stubSnapshot) Snapshot(context.Context) ([]byte, string, error) {
	return []byte("# Queryable tables\n\n## lab_results\n"), "abcd1234", nil
}

type stubPatients struct {
	patient *ent.Patient
	count   int
	exists  bool
}

func (s *stubPatients) Get(context.Context, uuid.UUID, uuid.UUID, bool) (*ent.Patient, error) {
	if s.patient == nil {
		return nil, errors.New("not found")
	}
	return s.patient, nil
}

func (s *stubPatients) Count(context.Context, uuid.UUID) (int, error) { return s.count, nil }

func (s *stubPatients) Exists(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return s.exists, nil
}

// captureSink records events synchronously for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []events.Event
	closed bool
}

func (s *captureSink) Send(event events.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("closed")
	}
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *captureSink) byType(t events.EventType) []events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []events.Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type turnFixture struct {
	llm      *scriptedLLM
	tools    *stubTools
	patients *stubPatients
	sessions *session.Store
	registry *events.Registry
	sink     *captureSink
	orch     *Orchestrator
}

func newTurnFixture(t *testing.T, opts Options) *turnFixture {
	t.Helper()
	if opts.Model == "" {
		opts.Model = "test-model"
	}
	if opts.MaxIterations == 0 {
		opts.MaxIterations = 10
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 1024
	}
	if opts.TokenBudget == 0 {
		opts.TokenBudget = 100000
	}
	if opts.PruneKeep == 0 {
		opts.PruneKeep = 40
	}

	f := &turnFixture{
		llm:      &scriptedLLM{},
		tools:    &stubTools{},
		patients: &stubPatients{count: 1, exists: true},
		sessions: session.NewStore(time.Hour),
		registry: events.NewRegistry(),
		sink:     &captureSink{},
	}
	f.orch = NewOrchestrator(f.llm, f.sessions, f.registry, f.tools, stubSnapshot{}, f.patients, opts)
	return f
}

// startTurn creates a session, attaches the sink, takes the processing lock
// and runs the turn to completion.
func (f *turnFixture) startTurn(t *testing.T, selectedPatient *uuid.UUID, message string) uuid.UUID {
	t.Helper()
	sess := f.sessions.Create(uuid.New(), selectedPatient, nil)
	f.registry.Attach(sess.ID, f.sink)
	require.True(t, f.sessions.TryAcquireLock(sess.ID))
	f.orch.ProcessTurn(sess.ID, message)
	return sess.ID
}

func toolCallScript(id string) []llm.Chunk {
	return []llm.Chunk{
		&llm.TextChunk{Content: "Let me check."},
		&llm.ToolCallChunk{CallID: id, Name: ToolExecuteSQL, Arguments: `{"sql":"SELECT 1"}`},
	}
}

func TestProcessTurnPlainText(t *testing.T) {
	f := newTurnFixture(t, Options{})
	f.llm.scripts = [][]llm.Chunk{{
		&llm.TextChunk{Content: "Hello, "},
		&llm.TextChunk{Content: "your hemoglobin looks fine."},
	}}

	id := f.startTurn(t, nil, "how is my hemoglobin?")

	require.Len(t, f.sink.byType(events.EventMessageStart), 1)
	require.Len(t, f.sink.byType(events.EventMessageEnd), 1, "message_end must be emitted exactly once")
	texts := f.sink.byType(events.EventText)
	require.Len(t, texts, 2)
	assert.Equal(t, "Hello, ", texts[0].Data["content"])

	sess, err := f.sessions.Peek(id)
	require.NoError(t, err)
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, models.RoleUser, sess.Messages[0].Role)
	assert.Equal(t, "Hello, your hemoglobin looks fine.", sess.Messages[1].Content)
	assert.Empty(t, sess.CurrentMessageID, "in-flight frame must be cleared")
	assert.False(t, sess.Processing, "lock must be released")
	assert.True(t, sess.Initialized)
	assert.Contains(t, sess.SystemPrompt, "Queryable tables")
}

func TestProcessTurnToolLoop(t *testing.T) {
	f := newTurnFixture(t, Options{})
	f.llm.scripts = [][]llm.Chunk{
		toolCallScript("call-1"),
		{&llm.TextChunk{Content: "Here is what I found."}},
	}

	id := f.startTurn(t, nil, "list my results")

	require.Len(t, f.tools.calls, 1)
	assert.Equal(t, ToolExecuteSQL, f.tools.calls[0].Name)

	require.Len(t, f.sink.byType(events.EventToolStart), 1)
	completes := f.sink.byType(events.EventToolComplete)
	require.Len(t, completes, 1)
	assert.NotContains(t, completes[0].Data, "error")
	require.Len(t, f.sink.byType(events.EventMessageEnd), 1)

	// user, assistant(tool call), tool response, final assistant
	sess, err := f.sessions.Peek(id)
	require.NoError(t, err)
	require.Len(t, sess.Messages, 4)
	assert.Equal(t, models.RoleTool, sess.Messages[2].Role)
	assert.Equal(t, "call-1", sess.Messages[2].ToolCallID)

	// The second LLM call saw the tool response.
	inputs := f.llm.seenInputs()
	require.Len(t, inputs, 2)
	last := inputs[1].Messages[len(inputs[1].Messages)-1]
	assert.Equal(t, models.RoleTool, last.Role)
}

func TestProcessTurnToolErrorFedBack(t *testing.T) {
	f := newTurnFixture(t, Options{})
	f.tools.err = &SQLError{Reason: "unknown table \"users\""}
	f.llm.scripts = [][]llm.Chunk{
		toolCallScript("call-1"),
		{&llm.TextChunk{Content: "Sorry, I used a wrong table."}},
	}

	id := f.startTurn(t, nil, "query something")

	completes := f.sink.byType(events.EventToolComplete)
	require.Len(t, completes, 1)
	assert.Contains(t, completes[0].Data["error"], "unknown table")

	// The error is handed to the LLM as the tool response, not surfaced as
	// a turn failure.
	sess, err := f.sessions.Peek(id)
	require.NoError(t, err)
	assert.Contains(t, sess.Messages[2].Content, "unknown table")
	assert.Empty(t, f.sink.byType(events.EventError))
	require.Len(t, f.sink.byType(events.EventMessageEnd), 1)
}

func TestProcessTurnIterationCeiling(t *testing.T) {
	f := newTurnFixture(t, Options{MaxIterations: 2})
	f.llm.scripts = [][]llm.Chunk{
		toolCallScript("call-1"),
		toolCallScript("call-2"),
		toolCallScript("call-3"),
	}

	id := f.startTurn(t, nil, "loop forever")

	errs := f.sink.byType(events.EventError)
	require.Len(t, errs, 1)
	assert.Equal(t, events.CodeIterationLimit, errs[0].Data["code"])

	require.Len(t, f.sink.byType(events.EventMessageEnd), 1,
		"teardown and the deferred finalize must not both emit message_end")
	require.Len(t, f.sink.byType(events.EventSessionExpired), 1)

	_, err := f.sessions.Peek(id)
	assert.ErrorIs(t, err, session.ErrNotFound, "the runaway session is destroyed")
}

func TestProcessTurnLLMStreamError(t *testing.T) {
	f := newTurnFixture(t, Options{})
	f.llm.scripts = [][]llm.Chunk{{
		&llm.TextChunk{Content: "partial"},
		&llm.ErrorChunk{Message: "upstream 529", Code: "overloaded", Retryable: true},
	}}

	id := f.startTurn(t, nil, "hello")

	errs := f.sink.byType(events.EventError)
	require.Len(t, errs, 1)
	assert.Equal(t, events.CodeLLMError, errs[0].Data["code"])
	require.Len(t, f.sink.byType(events.EventMessageEnd), 1)

	// The session survives an LLM failure; only the turn ends.
	sess, err := f.sessions.Peek(id)
	require.NoError(t, err)
	assert.False(t, sess.Processing)
}

func TestProcessTurnVanishedPatient(t *testing.T) {
	f := newTurnFixture(t, Options{})
	f.patients.exists = false
	patientID := uuid.New()

	id := f.startTurn(t, &patientID, "hello")

	require.Len(t, f.sink.byType(events.EventPatientUnavailable), 1)
	require.Len(t, f.sink.byType(events.EventSessionExpired), 1)
	assert.Empty(t, f.sink.byType(events.EventMessageStart), "no turn starts for a dead session")

	_, err := f.sessions.Peek(id)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestProcessTurnInitializesOnce(t *testing.T) {
	f := newTurnFixture(t, Options{})
	patientID := uuid.New()
	f.patients.patient = &ent.Patient{ID: patientID, FullName: "Jane Doe"}
	f.patients.count = 2
	f.patients.exists = true

	sess := f.sessions.Create(uuid.New(), &patientID, &models.OnboardingContext{
		PatientName: "Jane Doe",
		ValuesTable: "| Date | Parameter |",
	})
	f.registry.Attach(sess.ID, f.sink)

	require.True(t, f.sessions.TryAcquireLock(sess.ID))
	f.orch.ProcessTurn(sess.ID, "first message")

	after, err := f.sessions.Peek(sess.ID)
	require.NoError(t, err)
	assert.True(t, after.Initialized)
	assert.Contains(t, after.SystemPrompt, "Jane Doe")
	assert.Contains(t, after.SystemPrompt, patientID.String())
	assert.Nil(t, after.Onboarding, "onboarding context is consumed by the first turn")
	prompt := after.SystemPrompt

	require.True(t, f.sessions.TryAcquireLock(sess.ID))
	f.orch.ProcessTurn(sess.ID, "second message")

	again, err := f.sessions.Peek(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, prompt, again.SystemPrompt, "the prompt is assembled once per session")
}
