package port

import (
	"context"
	"time"
)

// Completion is the text returned by a language model for one prompt.
type Completion struct {
	Text     string
	Model    string
	Provider string
	Latency  time.Duration
}

// Completer abstracts a remote LLM chat completion call.
type Completer interface {
	Complete(ctx context.Context, prompt string) (*Completion, error)
}
