package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"interviewdesk/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackCompleter tries completers in order, skipping those with open circuits.
// It implements port.Completer.
type FallbackCompleter struct {
	completers []port.Completer
	circuits   []*circuitState
	names      []string
}

// NewFallbackCompleter creates a FallbackCompleter from an ordered list of completers and their names.
func NewFallbackCompleter(completers []port.Completer, names []string) *FallbackCompleter {
	circuits := make([]*circuitState, len(completers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackCompleter{
		completers: completers,
		circuits:   circuits,
		names:      names,
	}
}

// chainFailure collects why no provider in the chain produced a completion.
type chainFailure struct {
	lastErr       error
	hardFailure   bool
	earliestReset time.Time
}

func (c *chainFailure) backoff(resetAt time.Time) {
	if c.earliestReset.IsZero() || resetAt.Before(c.earliestReset) {
		c.earliestReset = resetAt
	}
}

// err reports a hard failure as-is. A chain that only hit rate limits or
// open circuits becomes a RateLimitError for the earliest reset.
func (c *chainFailure) err() error {
	if c.hardFailure {
		return fmt.Errorf("all providers failed: %w", c.lastErr)
	}
	retryAfter := time.Until(c.earliestReset)
	if retryAfter < time.Second {
		retryAfter = time.Second
	}
	return NewRateLimitError("all", errors.New("all providers rate limited"), int(retryAfter.Seconds()))
}

func (f *FallbackCompleter) Complete(ctx context.Context, prompt string) (*port.Completion, error) {
	now := time.Now()
	var failure chainFailure

	for i, c := range f.completers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("llm.FallbackCompleter: skipping %s (circuit open until %s)", f.names[i], resetAt.Format(time.RFC3339))
			failure.backoff(resetAt)
			continue
		}

		out, err := c.Complete(ctx, prompt)
		if err == nil {
			return out, nil
		}

		log.Printf("llm.FallbackCompleter: %s failed: %v", f.names[i], err)
		failure.lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			failure.backoff(resetAt)
		} else {
			failure.hardFailure = true
		}

		if ctx.Err() != nil {
			return nil, fmt.Errorf("all providers failed: %w", err)
		}
	}

	return nil, failure.err()
}
