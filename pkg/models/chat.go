package models

import "encoding/json"

// Message roles in a conversation log. The shapes mirror the OpenAI chat
// wire format so the default provider converts losslessly; the Anthropic
// adapter translates to content blocks.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ConversationMessage is one entry of a session's message log.
type ConversationMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// ToolCall is a complete tool invocation requested by the assistant.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition describes one callable tool for the LLM.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  json.RawMessage `json:"parameters"`
}

// QueryResult is the tabular outcome of a read-only SQL tool call. It is both
// returned to the LLM and cached on the session for display-tool fallback.
type QueryResult struct {
	Columns         []string         `json:"columns"`
	Rows            []map[string]any `json:"rows"`
	RowLimitApplied bool             `json:"row_limit_applied,omitempty"`
}

// OnboardingContext is handed from a finished ingestion batch to the next
// chat session. It is consumed by the first turn and then cleared.
type OnboardingContext struct {
	Insight     *Insight `json:"insight,omitempty"`
	ValuesTable string   `json:"values_table,omitempty"`
	PatientName string   `json:"patient_name,omitempty"`
	ReportCount int      `json:"report_count,omitempty"`
}

// Insight is the one-shot structured summary over a just-ingested batch.
type Insight struct {
	Finding   string   `json:"finding"`
	Action    string   `json:"action"`
	Tracking  string   `json:"tracking"`
	FollowUps []string `json:"follow_ups" jsonschema:"minItems=2,maxItems=4"`
	Language  string   `json:"language"`
}
