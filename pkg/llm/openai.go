package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/labtrail/labtrail/pkg/models"
)

// OpenAIClient implements Client over the OpenAI chat completions API.
type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a client with the given API key.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClient(apiKey)}
}

// NewOpenAIClientWithConfig allows a custom base URL (compatible gateways).
func NewOpenAIClientWithConfig(config openai.ClientConfig) *OpenAIClient {
	return &OpenAIClient{client: openai.NewClientWithConfig(config)}
}

// Generate streams one completion. Tool-call fragments arrive interleaved and
// keyed by index; they are accumulated and emitted as complete calls when the
// stream finishes the tool_calls turn.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	req := openai.ChatCompletionRequest{
		Model:     input.Model,
		Messages:  toOpenAIMessages(input.SystemPrompt, input.Messages),
		MaxTokens: input.MaxTokens,
		StreamOptions: &openai.StreamOptions{
			IncludeUsage: true,
		},
	}
	if len(input.Tools) > 0 {
		req.Tools = toOpenAITools(input.Tools)
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to open completion stream: %w", err)
	}

	out := make(chan Chunk, 16)
	go func() {
		defer close(out)
		defer stream.Close()
		c.pump(ctx, stream, out)
	}()
	return out, nil
}

func (c *OpenAIClient) pump(ctx context.Context, stream *openai.ChatCompletionStream, out chan<- Chunk) {
	send := func(chunk Chunk) bool {
		select {
		case out <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// Fragments accumulate per tool-call index until the turn closes.
	toolCalls := make(map[int]*openai.ToolCall)
	var order []int
	flush := func() bool {
		for _, idx := range order {
			tc := toolCalls[idx]
			if !send(&ToolCallChunk{
				CallID:    tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			}) {
				return false
			}
		}
		toolCalls = make(map[int]*openai.ToolCall)
		order = order[:0]
		return true
	}

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			flush()
			return
		}
		if err != nil {
			send(&ErrorChunk{
				Message:   err.Error(),
				Retryable: isRetryableOpenAIError(err),
			})
			return
		}

		if response.Usage != nil {
			if !send(&UsageChunk{
				InputTokens:  int64(response.Usage.PromptTokens),
				OutputTokens: int64(response.Usage.CompletionTokens),
			}) {
				return
			}
		}
		if len(response.Choices) == 0 {
			continue
		}
		choice := response.Choices[0]

		if choice.Delta.Content != "" {
			if !send(&TextChunk{Content: choice.Delta.Content}) {
				return
			}
		}

		for _, tc := range choice.Delta.ToolCalls {
			index := 0
			if tc.Index != nil {
				index = *tc.Index
			}
			acc, ok := toolCalls[index]
			if !ok {
				acc = &openai.ToolCall{Type: openai.ToolTypeFunction}
				toolCalls[index] = acc
				order = append(order, index)
			}
			acc.ID += tc.ID
			acc.Function.Name += tc.Function.Name
			acc.Function.Arguments += tc.Function.Arguments
		}

		if choice.FinishReason == openai.FinishReasonToolCalls {
			if !flush() {
				return
			}
		}
	}
}

// Structured performs a non-streaming schema-constrained call.
func (c *OpenAIClient) Structured(ctx context.Context, input *StructuredInput, out any) error {
	messages := []openai.ChatCompletionMessage{}
	if input.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: input.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.UserPrompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     input.Model,
		Messages:  messages,
		MaxTokens: input.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   input.SchemaName,
				Schema: input.Schema,
				Strict: true,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed structured completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("structured completion returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to decode structured response: %w", err)
	}
	return nil
}

// Close is a no-op; the underlying client holds no persistent connection.
func (c *OpenAIClient) Close() error { return nil }

func toOpenAIMessages(systemPrompt string, messages []models.ConversationMessage) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if systemPrompt != "" {
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		})
	}
	for _, m := range messages {
		msg := openai.ChatCompletionMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.Name,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		converted = append(converted, msg)
	}
	return converted
}

func toOpenAITools(tools []models.ToolDefinition) []openai.Tool {
	converted := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		converted = append(converted, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return converted
}

// isRetryableOpenAIError classifies transport and throttling failures that a
// retry might clear.
func isRetryableOpenAIError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"rate limit", "429", "500", "502", "503", "504", "timeout", "connection reset"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
