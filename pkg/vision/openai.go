package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	openAIProviderName = "openai"

	// Per-image cap enforced by the API.
	openAIMaxImage = 20 << 20
	// Request-level cap across all pages of one report.
	openAIMaxPayload = 48 << 20
)

// OpenAIProvider extracts structured lab data through the chat completions
// API with a strict JSON-schema response format. It cannot take PDFs; the
// pipeline hands it rasterized page images as data URLs.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	retry  RetryPolicy
}

// NewOpenAIProvider creates the adapter.
func NewOpenAIProvider(apiKey, model string, retry RetryPolicy) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  model,
		retry:  retry,
	}
}

func (p *OpenAIProvider) Name() string         { return openAIProviderName }
func (p *OpenAIProvider) Model() string        { return p.model }
func (p *OpenAIProvider) SupportsPDF() bool    { return false }
func (p *OpenAIProvider) MaxPayloadBytes() int { return openAIMaxPayload }

// Analyze runs one OCR call with retries.
func (p *OpenAIProvider) Analyze(ctx context.Context, req *Request) (json.RawMessage, error) {
	if err := p.admit(req); err != nil {
		return nil, err
	}

	request := openai.ChatCompletionRequest{
		Model:     p.model,
		Messages:  p.buildMessages(req),
		MaxTokens: req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.SchemaName,
				Schema: req.Schema,
				Strict: true,
			},
		},
	}

	var out json.RawMessage
	err := withRetry(ctx, p.retry, openAIProviderName, func() error {
		req.progress(30, "reading document")
		resp, err := p.client.CreateChatCompletion(ctx, request)
		if err != nil {
			return p.wrapError(err)
		}
		extracted, err := p.extract(resp)
		if err != nil {
			return err
		}
		out = extracted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (p *OpenAIProvider) admit(req *Request) error {
	if len(req.PDF) > 0 && len(req.Images) == 0 {
		return &ProviderError{
			Provider: openAIProviderName,
			Model:    p.model,
			Kind:     KindInvalid,
			Message:  "native PDF input not supported; rasterize pages first",
		}
	}
	if req.payloadBytes() > openAIMaxPayload {
		return &ProviderError{
			Provider: openAIProviderName,
			Model:    p.model,
			Kind:     KindTooLarge,
			Message:  fmt.Sprintf("payload %d bytes exceeds %d byte limit", req.payloadBytes(), openAIMaxPayload),
		}
	}
	for i, img := range req.Images {
		if len(img.Data) > openAIMaxImage {
			return &ProviderError{
				Provider: openAIProviderName,
				Model:    p.model,
				Kind:     KindTooLarge,
				Message:  fmt.Sprintf("image %d is %d bytes, limit %d", i+1, len(img.Data), openAIMaxImage),
			}
		}
	}
	return nil
}

func (p *OpenAIProvider) buildMessages(req *Request) []openai.ChatCompletionMessage {
	parts := make([]openai.ChatMessagePart, 0, len(req.Images)+1)
	for _, img := range req.Images {
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s",
					img.MimeType, base64.StdEncoding.EncodeToString(img.Data)),
				Detail: openai.ImageURLDetailHigh,
			},
		})
	}
	parts = append(parts, openai.ChatMessagePart{
		Type: openai.ChatMessagePartTypeText,
		Text: req.UserPrompt,
	})

	messages := []openai.ChatCompletionMessage{}
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	return append(messages, openai.ChatCompletionMessage{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: parts,
	})
}

func (p *OpenAIProvider) extract(resp openai.ChatCompletionResponse) (json.RawMessage, error) {
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{
			Provider: openAIProviderName,
			Model:    p.model,
			Kind:     KindInvalid,
			Message:  "completion returned no choices",
		}
	}
	choice := resp.Choices[0]
	if choice.Message.Refusal != "" {
		return nil, &ProviderError{
			Provider: openAIProviderName,
			Model:    p.model,
			Kind:     KindRefusal,
			Message:  choice.Message.Refusal,
		}
	}
	if choice.FinishReason == openai.FinishReasonLength {
		return nil, &ProviderError{
			Provider: openAIProviderName,
			Model:    p.model,
			Kind:     KindTruncated,
			Message:  "completion hit the max-tokens limit mid-object",
		}
	}
	return json.RawMessage(choice.Message.Content), nil
}

func (p *OpenAIProvider) wrapError(err error) error {
	pe := &ProviderError{
		Provider: openAIProviderName,
		Model:    p.model,
		Kind:     KindNetwork,
		Message:  err.Error(),
		Err:      err,
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		pe.Status = apiErr.HTTPStatusCode
		pe.Kind = kindForStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		pe.Status = reqErr.HTTPStatusCode
		pe.Kind = kindForStatus(reqErr.HTTPStatusCode)
	}
	return pe
}
