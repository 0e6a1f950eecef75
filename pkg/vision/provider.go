// Package vision routes lab-report artifacts to a vision OCR provider and
// returns structured JSON conforming to the caller's extraction schema. Two
// adapters exist; the fallback wrapper composes them.
package vision

import (
	"context"
	"encoding/json"
)

// ProgressFunc receives coarse progress while a provider works. Callbacks
// must be cheap; they run on the provider goroutine.
type ProgressFunc func(percent int, message string)

// Image is one prepared page image.
type Image struct {
	Data     []byte
	MimeType string
}

// Request is one OCR call. Either Images or PDF is set; providers that
// cannot take PDF input natively receive prepared page images instead.
type Request struct {
	Images       []Image
	PDF          []byte
	SystemPrompt string
	UserPrompt   string
	SchemaName   string
	Schema       json.RawMessage
	MaxTokens    int
	OnProgress   ProgressFunc
}

// Provider is one vision OCR backend. Analyze returns the raw structured
// object; the pipeline validates and sanitizes it afterwards.
type Provider interface {
	Analyze(ctx context.Context, req *Request) (json.RawMessage, error)
	Name() string
	Model() string
	SupportsPDF() bool
	MaxPayloadBytes() int
}

func (r *Request) progress(percent int, message string) {
	if r.OnProgress != nil {
		r.OnProgress(percent, message)
	}
}

// payloadBytes sums the input the provider would ship over the wire.
func (r *Request) payloadBytes() int {
	total := len(r.PDF)
	for _, img := range r.Images {
		total += len(img.Data)
	}
	return total
}
