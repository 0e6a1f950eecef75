package vision

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name    string
	model   string
	pdf     bool
	maxSize int

	out   json.RawMessage
	err   error
	calls int
}

func (p *fakeProvider) Analyze(_ context.Context, _ *Request) (json.RawMessage, error) {
	p.calls++
	return p.out, p.err
}

func (p *fakeProvider) Name() string         { return p.name }
func (p *fakeProvider) Model() string        { return p.model }
func (p *fakeProvider) SupportsPDF() bool    { return p.pdf }
func (p *fakeProvider) MaxPayloadBytes() int { return p.maxSize }

func TestFallbackPrimarySucceeds(t *testing.T) {
	primary := &fakeProvider{name: "anthropic", model: "primary-model", out: json.RawMessage(`{"ok":true}`)}
	secondary := &fakeProvider{name: "openai", model: "secondary-model"}
	f := NewFallbackProvider(primary, secondary)

	out, err := f.Analyze(context.Background(), &Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
	assert.Equal(t, 0, secondary.calls, "secondary must not run when the primary succeeds")
	assert.Equal(t, "primary-model", f.Model())
}

func TestFallbackOnOverload(t *testing.T) {
	primary := &fakeProvider{
		name:  "anthropic",
		model: "primary-model",
		err:   &ProviderError{Provider: "anthropic", Status: 529, Kind: KindOverloaded, Message: "overloaded"},
	}
	secondary := &fakeProvider{name: "openai", model: "secondary-model", out: json.RawMessage(`{"ok":true}`)}
	f := NewFallbackProvider(primary, secondary)

	var progress []string
	req := &Request{OnProgress: func(_ int, message string) { progress = append(progress, message) }}

	out, err := f.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(out))
	assert.Equal(t, 1, secondary.calls)

	require.Contains(t, progress, "primary failed, switching to secondary")
	assert.Equal(t, "secondary-model", f.Model(), "attribution follows the adapter that produced the result")
}

func TestFallbackSkippedForNonRetryable(t *testing.T) {
	primary := &fakeProvider{
		name: "anthropic",
		err:  &ProviderError{Provider: "anthropic", Kind: KindRefusal, Message: "cannot read this document"},
	}
	secondary := &fakeProvider{name: "openai", out: json.RawMessage(`{"ok":true}`)}
	f := NewFallbackProvider(primary, secondary)

	_, err := f.Analyze(context.Background(), &Request{})
	require.Error(t, err)
	assert.Equal(t, 0, secondary.calls, "refusals must not fail over")

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindRefusal, pe.Kind)
}

func TestFallbackBothFail(t *testing.T) {
	primary := &fakeProvider{
		name: "anthropic",
		err:  &ProviderError{Provider: "anthropic", Status: 503, Kind: KindServer, Message: "unavailable"},
	}
	secondary := &fakeProvider{
		name: "openai",
		err:  &ProviderError{Provider: "openai", Status: 500, Kind: KindServer, Message: "internal"},
	}
	f := NewFallbackProvider(primary, secondary)

	_, err := f.Analyze(context.Background(), &Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "both providers failed")
	assert.Contains(t, err.Error(), "anthropic")
	assert.Contains(t, err.Error(), "openai")
}

func TestFallbackCapabilities(t *testing.T) {
	primary := &fakeProvider{name: "a", pdf: true, maxSize: 32 << 20}
	secondary := &fakeProvider{name: "b", pdf: false, maxSize: 20 << 20}
	f := NewFallbackProvider(primary, secondary)

	assert.Equal(t, "a+b", f.Name())
	assert.True(t, f.SupportsPDF())
	assert.Equal(t, 32<<20, f.MaxPayloadBytes())
	assert.Same(t, primary, f.Primary())
	assert.Same(t, secondary, f.Secondary())
}
