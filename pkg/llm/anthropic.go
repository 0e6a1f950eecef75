package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/labtrail/labtrail/pkg/models"
)

// AnthropicClient implements Client over the Anthropic Messages API.
type AnthropicClient struct {
	client anthropic.Client
}

// NewAnthropicClient creates a client with the given API key.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{client: anthropic.NewClient(option.WithAPIKey(apiKey))}
}

// Generate streams one completion. Tool-use input arrives as partial JSON
// fragments inside one content block; the block's stop event closes the call.
func (c *AnthropicClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	params, err := c.buildParams(input)
	if err != nil {
		return nil, err
	}
	if len(input.Tools) > 0 {
		tools, err := toAnthropicTools(input.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = tools
	}

	stream := c.client.Messages.NewStreaming(ctx, params)

	out := make(chan Chunk, 16)
	go func() {
		defer close(out)
		c.pump(ctx, stream, out)
	}()
	return out, nil
}

type anthropicStream interface {
	Next() bool
	Current() anthropic.MessageStreamEventUnion
	Err() error
}

func (c *AnthropicClient) pump(ctx context.Context, stream anthropicStream, out chan<- Chunk) {
	send := func(chunk Chunk) bool {
		select {
		case out <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var (
		currentCall  *ToolCallChunk
		currentInput strings.Builder
		inputTokens  int64
		outputTokens int64
	)

	for stream.Next() {
		event := stream.Current()
		switch event.Type {
		case "message_start":
			messageStart := event.AsMessageStart()
			inputTokens = messageStart.Message.Usage.InputTokens

		case "content_block_start":
			contentBlock := event.AsContentBlockStart().ContentBlock
			if contentBlock.Type == "tool_use" {
				toolUse := contentBlock.AsToolUse()
				currentCall = &ToolCallChunk{CallID: toolUse.ID, Name: toolUse.Name}
				currentInput.Reset()
			}

		case "content_block_delta":
			delta := event.AsContentBlockDelta().Delta
			switch delta.Type {
			case "text_delta":
				if delta.Text != "" && !send(&TextChunk{Content: delta.Text}) {
					return
				}
			case "thinking_delta":
				if delta.Thinking != "" && !send(&ThinkingChunk{Content: delta.Thinking}) {
					return
				}
			case "input_json_delta":
				currentInput.WriteString(delta.PartialJSON)
			}

		case "content_block_stop":
			if currentCall != nil {
				currentCall.Arguments = currentInput.String()
				if currentCall.Arguments == "" {
					currentCall.Arguments = "{}"
				}
				if !send(currentCall) {
					return
				}
				currentCall = nil
			}

		case "message_delta":
			messageDelta := event.AsMessageDelta()
			if messageDelta.Usage.OutputTokens > 0 {
				outputTokens = messageDelta.Usage.OutputTokens
			}

		case "message_stop":
			send(&UsageChunk{InputTokens: inputTokens, OutputTokens: outputTokens})
			return

		case "error":
			send(&ErrorChunk{Message: "stream error from provider", Retryable: true})
			return
		}
	}

	if err := stream.Err(); err != nil {
		send(&ErrorChunk{
			Message:   err.Error(),
			Retryable: isRetryableAnthropicError(err),
		})
	}
}

// Structured forces the model through a single tool whose input schema is the
// caller's response schema, then decodes the tool input.
func (c *AnthropicClient) Structured(ctx context.Context, input *StructuredInput, out any) error {
	var schema anthropic.ToolInputSchemaParam
	if err := json.Unmarshal(input.Schema, &schema); err != nil {
		return fmt.Errorf("invalid response schema: %w", err)
	}

	toolParam := anthropic.ToolUnionParamOfTool(schema, input.SchemaName)
	if toolParam.OfTool == nil {
		return fmt.Errorf("invalid response schema: missing tool definition")
	}
	toolParam.OfTool.Description = anthropic.String("Record the structured answer.")

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(input.Model),
		MaxTokens: int64(input.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(input.UserPrompt)),
		},
		Tools: []anthropic.ToolUnionParam{toolParam},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: input.SchemaName},
		},
	}
	if input.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: input.SystemPrompt}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return fmt.Errorf("failed structured completion: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type != "tool_use" {
			continue
		}
		if err := json.Unmarshal([]byte(block.Input), out); err != nil {
			return fmt.Errorf("failed to decode structured response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("structured completion returned no tool_use block (stop_reason=%s)", msg.StopReason)
}

// Close is a no-op; the underlying client holds no persistent connection.
func (c *AnthropicClient) Close() error { return nil }

func (c *AnthropicClient) buildParams(input *GenerateInput) (anthropic.MessageNewParams, error) {
	messages, err := toAnthropicMessages(input.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(input.Model),
		MaxTokens: int64(input.MaxTokens),
		Messages:  messages,
	}
	if input.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: input.SystemPrompt}}
	}
	return params, nil
}

// toAnthropicMessages converts the conversation log to content-block form.
// System messages are carried separately; tool responses become user-side
// tool_result blocks.
func toAnthropicMessages(messages []models.ConversationMessage) ([]anthropic.MessageParam, error) {
	var result []anthropic.MessageParam
	for _, m := range messages {
		if m.Role == models.RoleSystem {
			continue
		}

		var content []anthropic.ContentBlockParamUnion
		if m.Role == models.RoleTool {
			content = append(content, anthropic.NewToolResultBlock(m.ToolCallID, m.Content, false))
			result = append(result, anthropic.NewUserMessage(content...))
			continue
		}

		if m.Content != "" {
			content = append(content, anthropic.NewTextBlock(m.Content))
		}
		for _, tc := range m.ToolCalls {
			var input map[string]interface{}
			if err := json.Unmarshal(tc.Arguments, &input); err != nil {
				return nil, fmt.Errorf("invalid tool call arguments: %w", err)
			}
			content = append(content, anthropic.NewToolUseBlock(tc.ID, input, tc.Name))
		}
		if len(content) == 0 {
			continue
		}

		if m.Role == models.RoleAssistant {
			result = append(result, anthropic.NewAssistantMessage(content...))
		} else {
			result = append(result, anthropic.NewUserMessage(content...))
		}
	}
	return result, nil
}

func toAnthropicTools(tools []models.ToolDefinition) ([]anthropic.ToolUnionParam, error) {
	var result []anthropic.ToolUnionParam
	for _, t := range tools {
		var schema anthropic.ToolInputSchemaParam
		if err := json.Unmarshal(t.Parameters, &schema); err != nil {
			return nil, fmt.Errorf("invalid tool schema for %s: %w", t.Name, err)
		}
		toolParam := anthropic.ToolUnionParamOfTool(schema, t.Name)
		if toolParam.OfTool == nil {
			return nil, fmt.Errorf("invalid tool schema for %s: missing tool definition", t.Name)
		}
		toolParam.OfTool.Description = anthropic.String(t.Description)
		result = append(result, toolParam)
	}
	return result, nil
}

func isRetryableAnthropicError(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"rate limit", "429", "500", "502", "503", "529", "overloaded", "timeout", "connection reset"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
