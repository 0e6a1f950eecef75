// Package chat drives the conversational turn loop: system prompt assembly,
// LLM streaming, tool dispatch, conversation pruning, and SSE emission.
package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/labtrail/labtrail/ent"
	"github.com/labtrail/labtrail/pkg/events"
	"github.com/labtrail/labtrail/pkg/llm"
	"github.com/labtrail/labtrail/pkg/models"
	"github.com/labtrail/labtrail/pkg/session"
)

// turnTimeout bounds one full user turn including all tool iterations.
const turnTimeout = 10 * time.Minute

// Options are the orchestrator's tunables, taken from config at boot.
type Options struct {
	Model            string
	MaxTokens        int
	MaxIterations    int
	TokenBudget      int
	PruneKeep        int
	ScopeEnforcement bool
	Production       bool
}

// ToolRunner is the dispatch surface of the Toolset.
type ToolRunner interface {
	Definitions() []models.ToolDefinition
	Execute(ctx context.Context, turn *TurnContext, call models.ToolCall) (*Outcome, error)
}

// SnapshotSource yields the schema manifest for prompt assembly. Satisfied
// by *schema.Service.
type SnapshotSource interface {
	Snapshot(ctx context.Context) ([]byte, string, error)
}

// PatientDirectory is the slice of the patient service the turn loop needs.
type PatientDirectory interface {
	Get(ctx context.Context, userID, patientID uuid.UUID, adminMode bool) (*ent.Patient, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Exists(ctx context.Context, userID, patientID uuid.UUID) (bool, error)
}

// Orchestrator runs message turns against sessions. One goroutine per turn;
// the session's processing lock guarantees at most one per session.
type Orchestrator struct {
	llm      llm.Client
	sessions *session.Store
	registry *events.Registry
	tools    ToolRunner
	schema   SnapshotSource
	patients PatientDirectory
	opts     Options
}

func NewOrchestrator(
	client llm.Client,
	sessions *session.Store,
	registry *events.Registry,
	tools ToolRunner,
	schemaService SnapshotSource,
	patients PatientDirectory,
	opts Options,
) *Orchestrator {
	return &Orchestrator{
		llm:      client,
		sessions: sessions,
		registry: registry,
		tools:    tools,
		schema:   schemaService,
		patients: patients,
		opts:     opts,
	}
}

// ProcessTurn runs one user message to completion. The caller must already
// hold the session's processing lock; ProcessTurn releases it. Safe to run
// in its own goroutine.
func (o *Orchestrator) ProcessTurn(sessionID uuid.UUID, userMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
	defer cancel()
	defer o.sessions.ReleaseLock(sessionID)

	logger := slog.With("session_id", sessionID)

	sess, err := o.sessions.Get(sessionID)
	if err != nil {
		logger.Warn("Turn scheduled for a vanished session")
		return
	}

	if ok := o.ensurePatient(ctx, sess, logger); !ok {
		return
	}
	if err := o.ensureInitialized(ctx, sess); err != nil {
		logger.Error("Failed to initialize session", "error", err)
		o.emitError(sessionID, "", events.CodeInternal, "could not prepare the conversation", err)
		return
	}

	if err := o.sessions.AppendMessage(sessionID, models.ConversationMessage{
		Role:    models.RoleUser,
		Content: userMessage,
	}); err != nil {
		logger.Warn("Session deleted before turn start")
		return
	}

	messageID := uuid.New().String()
	if err := o.sessions.Update(sessionID, func(s *session.Session) {
		s.CurrentMessageID = messageID
	}); err != nil {
		return
	}
	o.registry.Emit(sessionID, events.NewMessageEvent(events.EventMessageStart, messageID, nil))

	// message_end exactly once, on every exit path.
	defer o.finalize(sessionID, messageID)

	o.runLoop(ctx, sessionID, messageID, logger)
}

// runLoop drives LLM calls and tool execution until a response with zero
// tool calls or the iteration ceiling.
func (o *Orchestrator) runLoop(ctx context.Context, sessionID uuid.UUID, messageID string, logger *slog.Logger) {
	for iteration := 1; ; iteration++ {
		if iteration > o.opts.MaxIterations {
			logger.Warn("Iteration ceiling reached, destroying session", "iterations", o.opts.MaxIterations)
			o.registry.Emit(sessionID, events.ErrorEvent(messageID, events.CodeIterationLimit,
				fmt.Sprintf("conversation exceeded %d tool iterations", o.opts.MaxIterations), ""))
			o.teardown(sessionID, messageID, "iteration limit exceeded")
			return
		}

		// Re-check after every suspension point.
		sess, err := o.sessions.Get(sessionID)
		if err != nil {
			logger.Info("Session deleted mid-turn")
			return
		}

		pruned := Prune(sess.Messages, o.opts.TokenBudget, o.opts.PruneKeep)
		if len(pruned) != len(sess.Messages) {
			logger.Debug("Pruned conversation", "before", len(sess.Messages), "after", len(pruned))
		}

		assistant, toolCalls, failed := o.streamOnce(ctx, sessionID, messageID, sess.SystemPrompt, pruned, logger)
		if failed {
			return
		}

		if err := o.sessions.AppendMessage(sessionID, assistant); err != nil {
			logger.Info("Session deleted during LLM stream")
			return
		}
		if len(toolCalls) == 0 {
			return
		}

		if ok := o.executeTools(ctx, sessionID, messageID, toolCalls, logger); !ok {
			return
		}
	}
}

// streamOnce performs one LLM streaming call, forwarding text deltas as SSE
// and accumulating tool calls. failed=true means the turn must end (the
// error event has been emitted).
func (o *Orchestrator) streamOnce(ctx context.Context, sessionID uuid.UUID, messageID, systemPrompt string, messages []models.ConversationMessage, logger *slog.Logger) (models.ConversationMessage, []models.ToolCall, bool) {
	assistant := models.ConversationMessage{Role: models.RoleAssistant}

	chunks, err := o.llm.Generate(ctx, &llm.GenerateInput{
		Model:        o.opts.Model,
		SystemPrompt: systemPrompt,
		Messages:     messages,
		Tools:        o.tools.Definitions(),
		MaxTokens:    o.opts.MaxTokens,
	})
	if err != nil {
		logger.Error("LLM call failed to start", "error", err)
		o.emitError(sessionID, messageID, events.CodeLLMError, "the assistant is unavailable right now", err)
		return assistant, nil, true
	}

	var toolCalls []models.ToolCall
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			assistant.Content += c.Content
			o.registry.Emit(sessionID, events.NewMessageEvent(events.EventText, messageID, map[string]any{
				"content": c.Content,
			}))
		case *llm.ThinkingChunk:
			o.registry.Emit(sessionID, events.NewMessageEvent(events.EventStatus, messageID, map[string]any{
				"status":  "thinking",
				"message": "working through the data",
			}))
		case *llm.ToolCallChunk:
			toolCalls = append(toolCalls, models.ToolCall{
				ID:        c.CallID,
				Name:      c.Name,
				Arguments: json.RawMessage(c.Arguments),
			})
		case *llm.UsageChunk:
			logger.Debug("LLM usage", "input_tokens", c.InputTokens, "output_tokens", c.OutputTokens)
		case *llm.ErrorChunk:
			logger.Error("LLM stream error", "error", c.Message, "code", c.Code, "retryable", c.Retryable)
			o.emitError(sessionID, messageID, events.CodeLLMError, "the assistant ran into a problem", fmt.Errorf("%s", c.Message))
			return assistant, nil, true
		}
	}

	assistant.ToolCalls = toolCalls
	return assistant, toolCalls, false
}

// executeTools runs accumulated calls in dispatch order, emitting
// tool_start/tool_complete and appending tool responses. ok=false ends the
// turn (session vanished).
func (o *Orchestrator) executeTools(ctx context.Context, sessionID uuid.UUID, messageID string, calls []models.ToolCall, logger *slog.Logger) bool {
	var scope *Scope
	if sess, err := o.sessions.Peek(sessionID); err == nil {
		scope = o.scopeFor(ctx, sess, logger)
	}

	for _, call := range calls {
		o.registry.Emit(sessionID, events.NewMessageEvent(events.EventToolStart, messageID, map[string]any{
			"tool":   call.Name,
			"params": json.RawMessage(call.Arguments),
		}))

		sess, err := o.sessions.Get(sessionID)
		if err != nil {
			return false
		}
		turn := &TurnContext{
			UserID:     sess.UserID,
			MessageID:  messageID,
			Scope:      scope,
			LastResult: sess.LastResult,
		}

		started := time.Now()
		outcome, execErr := o.tools.Execute(ctx, turn, call)
		durationMS := time.Since(started).Milliseconds()

		completeData := map[string]any{
			"tool":        call.Name,
			"duration_ms": durationMS,
		}
		response := ""
		if execErr != nil {
			// The LLM sees tool errors verbatim so it can self-correct.
			completeData["error"] = execErr.Error()
			encoded, _ := json.Marshal(map[string]string{"error": execErr.Error()})
			response = string(encoded)
			logger.Info("Tool failed", "tool", call.Name, "error", execErr)
		} else {
			response = outcome.Response
		}
		o.registry.Emit(sessionID, events.NewMessageEvent(events.EventToolComplete, messageID, completeData))

		if execErr == nil {
			for _, ev := range outcome.Events {
				o.registry.Emit(sessionID, ev)
			}
			if outcome.Cache != nil {
				_ = o.sessions.Update(sessionID, func(s *session.Session) {
					s.LastResult = outcome.Cache
				})
			}
		}

		if err := o.sessions.AppendMessage(sessionID, models.ConversationMessage{
			Role:       models.RoleTool,
			Content:    response,
			ToolCallID: call.ID,
			Name:       call.Name,
		}); err != nil {
			return false
		}
	}
	return true
}

// scopeFor returns the patient scope when enforcement applies: a patient is
// selected and the owner has more than one patient.
func (o *Orchestrator) scopeFor(ctx context.Context, sess *session.Session, logger *slog.Logger) *Scope {
	if !o.opts.ScopeEnforcement || sess.SelectedPatientID == nil {
		return nil
	}
	count, err := o.patients.Count(ctx, sess.UserID)
	if err != nil {
		logger.Warn("Patient count failed, keeping scope enforcement on", "error", err)
		return &Scope{PatientID: *sess.SelectedPatientID}
	}
	if count <= 1 {
		return nil
	}
	return &Scope{PatientID: *sess.SelectedPatientID}
}

// ensurePatient recounts patients on every message. A vanished selected
// patient tears the session down.
func (o *Orchestrator) ensurePatient(ctx context.Context, sess *session.Session, logger *slog.Logger) bool {
	if sess.SelectedPatientID == nil {
		return true
	}
	exists, err := o.patients.Exists(ctx, sess.UserID, *sess.SelectedPatientID)
	if err != nil {
		logger.Error("Patient existence check failed", "error", err)
		o.emitError(sess.ID, "", events.CodeInternal, "could not verify the selected patient", err)
		return false
	}
	if exists {
		return true
	}

	logger.Info("Selected patient vanished, destroying session", "patient_id", *sess.SelectedPatientID)
	o.registry.Emit(sess.ID, events.NewEvent(events.EventPatientUnavailable, map[string]any{
		"sessionId":         sess.ID.String(),
		"selectedPatientId": sess.SelectedPatientID.String(),
		"message":           "the selected patient no longer exists",
	}))
	o.registry.Close(sess.ID, "patient unavailable")
	o.sessions.Delete(sess.ID)
	return false
}

// ensureInitialized assembles the system prompt on the session's first turn
// and clears the onboarding context so retries do not duplicate it.
func (o *Orchestrator) ensureInitialized(ctx context.Context, sess *session.Session) error {
	if sess.Initialized {
		return nil
	}

	manifest, _, err := o.schema.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to build schema snapshot: %w", err)
	}

	if sess.SelectedPatientID != nil {
		pat, err := o.patients.Get(ctx, sess.UserID, *sess.SelectedPatientID, false)
		if err != nil {
			return fmt.Errorf("failed to load selected patient: %w", err)
		}
		count, err := o.patients.Count(ctx, sess.UserID)
		if err != nil {
			return fmt.Errorf("failed to count patients: %w", err)
		}
		return o.storePrompt(sess.ID, BuildSystemPrompt(manifest, pat, count, sess.Onboarding))
	}

	return o.storePrompt(sess.ID, BuildSystemPrompt(manifest, nil, 0, sess.Onboarding))
}

func (o *Orchestrator) storePrompt(sessionID uuid.UUID, prompt string) error {
	return o.sessions.Update(sessionID, func(s *session.Session) {
		s.SystemPrompt = prompt
		s.Initialized = true
		s.Onboarding = nil
	})
}

// finalize emits message_end and clears the in-flight frame, then arms the
// registry's finalization guard so stragglers are dropped.
func (o *Orchestrator) finalize(sessionID uuid.UUID, messageID string) {
	o.registry.Emit(sessionID, events.NewMessageEvent(events.EventMessageEnd, messageID, nil))
	o.registry.Finalize(sessionID, messageID)
	_ = o.sessions.Update(sessionID, func(s *session.Session) {
		if s.CurrentMessageID == messageID {
			s.CurrentMessageID = ""
		}
	})
}

// teardown hard-cancels a session after its current message is finalized by
// the deferred finalize.
func (o *Orchestrator) teardown(sessionID uuid.UUID, messageID string, reason string) {
	o.registry.Emit(sessionID, events.NewMessageEvent(events.EventMessageEnd, messageID, nil))
	o.registry.Finalize(sessionID, messageID)
	o.registry.Close(sessionID, reason)
	o.sessions.Delete(sessionID)
}

func (o *Orchestrator) emitError(sessionID uuid.UUID, messageID, code, message string, err error) {
	debug := ""
	if !o.opts.Production && err != nil {
		debug = err.Error()
	}
	o.registry.Emit(sessionID, events.ErrorEvent(messageID, code, message, debug))
}
