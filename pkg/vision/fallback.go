package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// failoverProgressPercent is the job progress reported when switching.
const failoverProgressPercent = 45

// FallbackProvider wraps a primary and a secondary adapter. The primary runs
// its full retry budget first; only retryable-class exhaustion (rate limit,
// overload, 5xx, network) fails over. Model() reports the adapter that
// actually produced the last extraction so downstream logs attribute
// correctly.
type FallbackProvider struct {
	primary   Provider
	secondary Provider

	// lastUsed is 0 for primary, 1 for secondary.
	lastUsed atomic.Int32
}

// NewFallbackProvider composes the pair.
func NewFallbackProvider(primary, secondary Provider) *FallbackProvider {
	if primary == nil {
		panic("NewFallbackProvider: primary must not be nil")
	}
	if secondary == nil {
		panic("NewFallbackProvider: secondary must not be nil")
	}
	return &FallbackProvider{primary: primary, secondary: secondary}
}

func (f *FallbackProvider) Name() string {
	return fmt.Sprintf("%s+%s", f.primary.Name(), f.secondary.Name())
}

// Model reports the model of the adapter used by the most recent Analyze.
func (f *FallbackProvider) Model() string {
	if f.lastUsed.Load() == 1 {
		return f.secondary.Model()
	}
	return f.primary.Model()
}

// SupportsPDF is true when either adapter takes PDFs natively; the pipeline
// still checks the active adapter before skipping rasterization.
func (f *FallbackProvider) SupportsPDF() bool {
	return f.primary.SupportsPDF() || f.secondary.SupportsPDF()
}

func (f *FallbackProvider) MaxPayloadBytes() int {
	if p, s := f.primary.MaxPayloadBytes(), f.secondary.MaxPayloadBytes(); s > p {
		return s
	}
	return f.primary.MaxPayloadBytes()
}

// Primary exposes the wrapped primary for input preparation decisions.
func (f *FallbackProvider) Primary() Provider { return f.primary }

// Secondary exposes the wrapped secondary.
func (f *FallbackProvider) Secondary() Provider { return f.secondary }

// Analyze tries the primary, then the secondary on retryable-class failure.
// A composite failure surfaces both underlying errors.
func (f *FallbackProvider) Analyze(ctx context.Context, req *Request) (json.RawMessage, error) {
	f.lastUsed.Store(0)
	out, primaryErr := f.primary.Analyze(ctx, req)
	if primaryErr == nil {
		return out, nil
	}
	if !IsRetryable(primaryErr) {
		// Refusal, truncation, too-large: the secondary would fail the
		// same way or produce a worse extraction.
		return nil, primaryErr
	}
	if ctx.Err() != nil {
		return nil, primaryErr
	}

	slog.Warn("Primary vision provider failed, switching to secondary",
		"primary", f.primary.Name(),
		"secondary", f.secondary.Name(),
		"error", primaryErr,
	)
	req.progress(failoverProgressPercent, "primary failed, switching to secondary")

	f.lastUsed.Store(1)
	out, secondaryErr := f.secondary.Analyze(ctx, req)
	if secondaryErr == nil {
		return out, nil
	}
	return nil, fmt.Errorf("both providers failed: primary: %w; secondary: %v", primaryErr, secondaryErr)
}
