package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"interviewdesk/internal/config"
	"interviewdesk/internal/llm"
	"interviewdesk/internal/port"
)

const (
	providerName = "openai"
	defaultModel = "gpt-4o"
)

func init() {
	llm.RegisterProvider(providerName, func(cfg *config.ProviderConfig) (port.Completer, error) {
		if cfg.APIKey == "" {
			return nil, errors.New("openai api key is not set")
		}
		return NewClient(cfg), nil
	})
}

// Client implements port.Completer with the OpenAI SDK. Any
// OpenAI-compatible endpoint can be targeted through BaseURL.
type Client struct {
	client      *openai.Client
	model       string
	temperature float64
}

// NewClient creates an OpenAI completer from a provider config.
func NewClient(cfg *config.ProviderConfig, opts ...option.RequestOption) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 180 * time.Second
	}

	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(timeout),
		// Retries are handled by llm.WithRetries.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")+"/"))
	}
	client := openai.NewClient(append(base, opts...)...)

	return &Client{client: &client, model: model, temperature: cfg.Temperature}
}

func (c *Client) Complete(ctx context.Context, prompt string) (*port.Completion, error) {
	start := time.Now()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	model := resp.Model
	if model == "" {
		model = c.model
	}
	return &port.Completion{
		Text:     resp.Choices[0].Message.Content,
		Model:    model,
		Provider: providerName,
		Latency:  time.Since(start),
	}, nil
}

// classify maps SDK errors onto llm.StatusError and llm.RateLimitError.
func classify(err error) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("calling openai API: %w", err)
	}

	baseErr := &llm.StatusError{Provider: providerName, StatusCode: apiErr.StatusCode, Body: apiErr.Message}
	if apiErr.StatusCode == http.StatusTooManyRequests {
		retryAfter := 0
		if apiErr.Response != nil {
			retryAfter = llm.ParseRetryAfterHeader(apiErr.Response.Header.Get("Retry-After"))
		}
		return llm.NewRateLimitError(providerName, baseErr, retryAfter)
	}
	return baseErr
}
