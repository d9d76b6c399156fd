package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interviewdesk/internal/config"
	"interviewdesk/internal/llm"
	"interviewdesk/internal/port"
)

// stubCompleter is a minimal Completer for testing the factory.
type stubCompleter struct {
	model string
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (*port.Completion, error) {
	return &port.Completion{Model: s.model, Text: "ok"}, nil
}

func init() {
	llm.RegisterProvider("test-provider", func(cfg *config.ProviderConfig) (port.Completer, error) {
		return &stubCompleter{model: cfg.DefaultModel}, nil
	})
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	c, err := llm.NewCompleter(&config.ProviderConfig{
		Provider:     "test-provider",
		DefaultModel: "test-model",
	})

	require.NoError(t, err)
	out, err := c.Complete(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "test-model", out.Model)
}

func TestFactory_UnknownProvider(t *testing.T) {
	c, err := llm.NewCompleter(&config.ProviderConfig{Provider: "nonexistent-provider-xyz"})

	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown llm provider")
}

func TestNewFromConfig_SingleProvider(t *testing.T) {
	c, err := llm.NewFromConfig(&config.LLMConfig{Provider: "test-provider", DefaultModel: "m"})

	require.NoError(t, err)
	assert.IsType(t, &stubCompleter{}, c)
}

func TestNewFromConfig_Chain(t *testing.T) {
	c, err := llm.NewFromConfig(&config.LLMConfig{
		Primary:   config.ProviderConfig{Provider: "test-provider"},
		Secondary: config.ProviderConfig{Provider: "test-provider"},
	})

	require.NoError(t, err)
	assert.IsType(t, &llm.FallbackCompleter{}, c)
}

func TestNewFromConfig_UnknownInChain(t *testing.T) {
	_, err := llm.NewFromConfig(&config.LLMConfig{
		Primary:   config.ProviderConfig{Provider: "test-provider"},
		Secondary: config.ProviderConfig{Provider: "missing"},
	})

	assert.Error(t, err)
}
