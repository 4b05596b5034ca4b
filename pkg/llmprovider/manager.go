package llmprovider

import (
	"context"
	"fmt"
	"time"

	"booking-assistant/pkg/log"
)

const (
	resultOK      = "ok"
	resultError   = "error"
	resultTimeout = "timeout"
)

// Observer is told about every provider attempt.
type Observer interface {
	LLMRequest(provider, result string)
}

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	observer  Observer
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
	Temperature     float64       // used by Complete
	JSONMode        bool          // used by Complete
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// WithObserver attaches o to the manager and returns it.
func (m *Manager) WithObserver(o Observer) *Manager {
	m.observer = o
	return m
}

// Complete sends one system instruction and one user message and returns the raw reply text.
func (m *Manager) Complete(ctx context.Context, systemInstruction, userText string) (string, error) {
	resp, err := m.GenerateContent(ctx, &Request{
		SystemInstruction: systemInstruction,
		UserText:          userText,
		Temperature:       m.config.Temperature,
		JSONMode:          m.config.JSONMode,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || req.UserText == "" {
		return nil, ErrInvalidRequest
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for i, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded after trying %d provider(s): %v",
				ErrProviderTimeout, i, ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			m.observe(provider, resultOK)
			return resp, nil
		}

		if ctx.Err() != nil {
			m.observe(provider, resultTimeout)
		} else {
			m.observe(provider, resultError)
		}
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) observe(provider Provider, result string) {
	if m.observer != nil {
		m.observer.LLMRequest(provider.Name(), result)
	}
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	m.logger.Infof(ctx, "llmprovider.Manager: generation successful provider=%s model=%s total_tokens=%d",
		provider.Name(), provider.Model(), tokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "llmprovider.Manager: generation failed provider=%s model=%s: %v",
		provider.Name(), provider.Model(), err)
}
