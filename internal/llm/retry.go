package llm

import (
	"context"
	"errors"
	"log"
	"time"

	"interviewdesk/internal/port"
)

// retryingCompleter repeats a completion on transient failures: network
// errors and 5xx responses. Rate limits and 4xx responses return at once so
// the fallback chain can react.
type retryingCompleter struct {
	next       port.Completer
	maxRetries int
	backoff    time.Duration
}

// WithRetries wraps c so transient failures are retried up to maxRetries
// times with linear backoff. maxRetries <= 0 returns c unchanged.
func WithRetries(c port.Completer, maxRetries int, backoff time.Duration) port.Completer {
	if maxRetries <= 0 {
		return c
	}
	return &retryingCompleter{next: c, maxRetries: maxRetries, backoff: backoff}
}

func (r *retryingCompleter) Complete(ctx context.Context, prompt string) (*port.Completion, error) {
	var err error
	for attempt := 0; ; attempt++ {
		var out *port.Completion
		out, err = r.next.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}
		if attempt >= r.maxRetries || !retryable(err) {
			return nil, err
		}

		wait := r.backoff * time.Duration(attempt+1)
		log.Printf("llm.retryingCompleter: attempt %d failed, retrying in %s: %v", attempt+1, wait, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rl *RateLimitError
	if errors.As(err, &rl) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
