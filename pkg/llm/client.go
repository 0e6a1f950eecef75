// Package llm provides the chat-completion client abstraction shared by the
// conversational core, the mapping suggester, and the insight generator.
// Providers stream responses as a channel of typed chunks.
package llm

import (
	"context"
	"encoding/json"

	"github.com/labtrail/labtrail/pkg/models"
)

// Client is the provider-side interface for conversational LLM calls.
type Client interface {
	// Generate sends a conversation to the LLM and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Errors are delivered as ErrorChunk values in the channel.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Structured performs a non-streaming call that must return JSON
	// conforming to the given schema, decoded into out.
	Structured(ctx context.Context, input *StructuredInput, out any) error

	// Close releases underlying connections.
	Close() error
}

// GenerateInput is one conversational request.
type GenerateInput struct {
	Model        string
	SystemPrompt string
	Messages     []models.ConversationMessage
	Tools        []models.ToolDefinition // nil = no tools
	MaxTokens    int
}

// StructuredInput is one schema-constrained request.
type StructuredInput struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       json.RawMessage // JSON Schema the response must satisfy
	MaxTokens    int
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the LLM's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals a complete accumulated tool call.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct{ InputTokens, OutputTokens int64 }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
