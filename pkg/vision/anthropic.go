package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	anthropicProviderName = "anthropic"

	// Request-level cap for document payloads.
	anthropicMaxPayload = 32 << 20
	// Per-image cap enforced by the API.
	anthropicMaxImage = 5 << 20
)

// AnthropicProvider extracts structured lab data through the Messages API.
// PDFs ship natively as document blocks, so uploads skip rasterization when
// this provider is active. Structured output is forced tool use: the
// extraction schema becomes the input schema of a single mandatory tool.
type AnthropicProvider struct {
	client anthropic.Client
	model  string
	retry  RetryPolicy
}

// NewAnthropicProvider creates the adapter.
func NewAnthropicProvider(apiKey, model string, retry RetryPolicy) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		retry:  retry,
	}
}

func (p *AnthropicProvider) Name() string         { return anthropicProviderName }
func (p *AnthropicProvider) Model() string        { return p.model }
func (p *AnthropicProvider) SupportsPDF() bool    { return true }
func (p *AnthropicProvider) MaxPayloadBytes() int { return anthropicMaxPayload }

// Analyze runs one OCR call with retries.
func (p *AnthropicProvider) Analyze(ctx context.Context, req *Request) (json.RawMessage, error) {
	if err := p.admit(req); err != nil {
		return nil, err
	}

	params, err := p.buildParams(req)
	if err != nil {
		return nil, err
	}

	var out json.RawMessage
	err = withRetry(ctx, p.retry, anthropicProviderName, func() error {
		req.progress(30, "reading document")
		msg, err := p.client.Messages.New(ctx, params)
		if err != nil {
			return p.wrapError(err)
		}
		extracted, err := p.extract(msg)
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

// admit fails oversized payloads before any network round-trip.
func (p *AnthropicProvider) admit(req *Request) error {
	if req.payloadBytes() > anthropicMaxPayload {
		return &ProviderError{
			Provider: anthropicProviderName,
			Model:    p.model,
			Kind:     KindTooLarge,
			Message:  fmt.Sprintf("payload %d bytes exceeds %d byte limit", req.payloadBytes(), anthropicMaxPayload),
		}
	}
	for i, img := range req.Images {
		if len(img.Data) > anthropicMaxImage {
			return &ProviderError{
				Provider: anthropicProviderName,
				Model:    p.model,
				Kind:     KindTooLarge,
				Message:  fmt.Sprintf("image %d is %d bytes, limit %d", i+1, len(img.Data), anthropicMaxImage),
			}
		}
	}
	return nil
}

func (p *AnthropicProvider) buildParams(req *Request) (anthropic.MessageNewParams, error) {
	var schema anthropic.ToolInputSchemaParam
	if err := json.Unmarshal(req.Schema, &schema); err != nil {
		return anthropic.MessageNewParams{}, fmt.Errorf("invalid extraction schema: %w", err)
	}
	toolParam := anthropic.ToolUnionParamOfTool(schema, req.SchemaName)
	if toolParam.OfTool == nil {
		return anthropic.MessageNewParams{}, fmt.Errorf("invalid extraction schema: missing tool definition")
	}
	toolParam.OfTool.Description = anthropic.String("Record the extracted lab report.")

	var content []anthropic.ContentBlockParamUnion
	if len(req.PDF) > 0 {
		content = append(content, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
			Data: base64.StdEncoding.EncodeToString(req.PDF),
		}))
	}
	for _, img := range req.Images {
		mediaType, ok := anthropicMediaType(img.MimeType)
		if !ok {
			return anthropic.MessageNewParams{}, &ProviderError{
				Provider: anthropicProviderName,
				Model:    p.model,
				Kind:     KindInvalid,
				Message:  fmt.Sprintf("unsupported image mime type %q", img.MimeType),
			}
		}
		content = append(content, anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
			MediaType: mediaType,
			Data:      base64.StdEncoding.EncodeToString(img.Data),
		}))
	}
	content = append(content, anthropic.NewTextBlock(req.UserPrompt))

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(req.MaxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(content...)},
		Tools:     []anthropic.ToolUnionParam{toolParam},
		ToolChoice: anthropic.ToolChoiceUnionParam{
			OfTool: &anthropic.ToolChoiceToolParam{Name: req.SchemaName},
		},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	return params, nil
}

// extract pulls the forced tool_use input out of the response. A response
// without it is a refusal or a truncation, both terminal.
func (p *AnthropicProvider) extract(msg *anthropic.Message) (json.RawMessage, error) {
	for _, block := range msg.Content {
		if block.Type == "tool_use" {
			return json.RawMessage(block.Input), nil
		}
	}

	kind := KindRefusal
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		kind = KindTruncated
	}
	return nil, &ProviderError{
		Provider: anthropicProviderName,
		Model:    p.model,
		Kind:     kind,
		Message:  fmt.Sprintf("no structured output (stop_reason=%s)", msg.StopReason),
	}
}

func (p *AnthropicProvider) wrapError(err error) error {
	pe := &ProviderError{
		Provider: anthropicProviderName,
		Model:    p.model,
		Kind:     KindNetwork,
		Message:  err.Error(),
		Err:      err,
	}
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		pe.Status = apiErr.StatusCode
		pe.Kind = kindForStatus(apiErr.StatusCode)
		if apiErr.Response != nil {
			if d, ok := parseRetryAfter(apiErr.Response.Header.Get("Retry-After"), time.Now()); ok {
				pe.RetryAfter = d
			}
		}
	}
	return pe
}

func anthropicMediaType(mime string) (anthropic.Base64ImageSourceMediaType, bool) {
	switch mime {
	case "image/jpeg":
		return anthropic.Base64ImageSourceMediaTypeImageJPEG, true
	case "image/png":
		return anthropic.Base64ImageSourceMediaTypeImagePNG, true
	case "image/gif":
		return anthropic.Base64ImageSourceMediaTypeImageGIF, true
	case "image/webp":
		return anthropic.Base64ImageSourceMediaTypeImageWebP, true
	}
	return "", false
}
