package vision

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies provider failures for retry and fallback decisions.
type ErrorKind string

const (
	// KindRateLimited: 429; retried with a longer base delay.
	KindRateLimited ErrorKind = "rate_limited"
	// KindOverloaded: 529 or an explicit overload signal.
	KindOverloaded ErrorKind = "overloaded"
	// KindServer: generic 5xx.
	KindServer ErrorKind = "server"
	// KindNetwork: transport failure before a status arrived.
	KindNetwork ErrorKind = "network"
	// KindTooLarge: payload exceeds the provider limit; detected before
	// any network round-trip and never retried.
	KindTooLarge ErrorKind = "too_large"
	// KindRefusal: the model declined to produce the extraction.
	KindRefusal ErrorKind = "refusal"
	// KindTruncated: the model hit max tokens mid-object.
	KindTruncated ErrorKind = "truncated"
	// KindInvalid: bad request or malformed provider output.
	KindInvalid ErrorKind = "invalid"
)

// ProviderError carries the provider name and status so the fallback wrapper
// can classify without string matching.
type ProviderError struct {
	Provider string
	Model    string
	Status   int
	Kind     ErrorKind
	Message  string

	// RetryAfter is the provider's requested delay, zero when absent.
	RetryAfter time.Duration

	Err error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Retryable reports whether another attempt against the same provider can
// succeed.
func (e *ProviderError) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindOverloaded, KindServer, KindNetwork:
		return true
	}
	return false
}

// IsRetryable classifies any error for retry purposes. Unknown errors count
// as network-class failures.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	return true
}

// IsRateLimited reports whether the error warrants the longer backoff base.
func IsRateLimited(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe) && (pe.Kind == KindRateLimited || pe.Kind == KindOverloaded)
}

// RetryAfterHint extracts the provider's requested delay when present.
func RetryAfterHint(err error) time.Duration {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.RetryAfter
	}
	return 0
}

// kindForStatus maps an HTTP status to the error taxonomy.
func kindForStatus(status int) ErrorKind {
	switch {
	case status == 429:
		return KindRateLimited
	case status == 529:
		return KindOverloaded
	case status >= 500:
		return KindServer
	case status == 413:
		return KindTooLarge
	default:
		return KindInvalid
	}
}
