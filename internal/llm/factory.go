package llm

import (
	"fmt"
	"time"

	"interviewdesk/internal/config"
	"interviewdesk/internal/port"
)

// ProviderFactory creates a Completer from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.Completer, error)

// registry of provider factories, populated by init() in each provider package
// or explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the registered factory.
// The result retries transient failures up to cfg.MaxRetries times.
func NewCompleter(cfg *config.ProviderConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
	c, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating %s completer: %w", cfg.Provider, err)
	}
	return WithRetries(c, cfg.MaxRetries, time.Second), nil
}

// NewFromConfig builds the configured provider chain. A single provider is
// returned as is; several are wrapped in a FallbackCompleter.
func NewFromConfig(cfg *config.LLMConfig) (port.Completer, error) {
	chain := cfg.Chain()
	completers := make([]port.Completer, 0, len(chain))
	names := make([]string, 0, len(chain))
	for _, pc := range chain {
		c, err := NewCompleter(pc)
		if err != nil {
			return nil, err
		}
		completers = append(completers, c)
		names = append(names, pc.Provider)
	}
	if len(completers) == 1 {
		return completers[0], nil
	}
	return NewFallbackCompleter(completers, names), nil
}
