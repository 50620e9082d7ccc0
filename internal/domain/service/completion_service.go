package service

import (
	"context"

	"herbwise/internal/errors"
)

// Sentinel errors reported by the remote text-completion collaborator. The
// assistant's retry and fallback policy branches on these via errors.Is.
var (
	// ErrRateLimited signals a transient rate limit; the call may be retried
	// with backoff.
	ErrRateLimited = errors.New("completion rate limited")

	// ErrQuotaExceeded signals the collaborator's daily usage cap was
	// reached; retrying will not help until the quota resets.
	ErrQuotaExceeded = errors.New("completion quota exceeded")

	// ErrNetwork signals the remote endpoint could not be reached.
	ErrNetwork = errors.New("completion network failure")

	// ErrMalformedResponse signals the response body did not match the
	// expected structure.
	ErrMalformedResponse = errors.New("completion response malformed")

	// ErrUnavailable signals a non-OK HTTP status other than rate limiting.
	ErrUnavailable = errors.New("completion service unavailable")
)

// CompletionService turns a free-text prompt into generated text using a
// remote generative-language endpoint.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
