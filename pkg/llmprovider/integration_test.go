package llmprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-assistant/config"
	"booking-assistant/pkg/llmprovider"
	"booking-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration loading,
// provider initialization, and manager work together end to end against a
// fake OpenAI-compatible endpoint.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"llama-3.3-70b-versatile","choices":[{"message":{"role":"assistant","content":"{\"intent\":\"check_schedule\"}"},"finish_reason":"stop"}],"usage":{"total_tokens":3}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{
				Name:     "groq",
				Enabled:  true,
				Priority: 1,
				APIKey:   "test-groq-key",
				BaseURL:  ts.URL,
				Model:    "llama-3.3-70b-versatile",
				Timeout:  "5s",
			},
			{
				Name:     "gemini",
				Enabled:  true,
				Priority: 2,
				APIKey:   "test-gemini-key",
				Model:    "gemini-2.5-flash",
				Timeout:  "30s",
			},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "10s",
	}

	ctx := context.Background()
	logger := log.NewNop()

	providers, err := llmprovider.InitializeProviders(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "groq" || providers[1].Name() != "gemini" {
		t.Errorf("Unexpected provider order: %s, %s", providers[0].Name(), providers[1].Name())
	}

	managerConfig, err := llmprovider.ManagerConfig(*cfg, 0.1)
	if err != nil {
		t.Fatalf("ManagerConfig: %v", err)
	}
	if managerConfig.RetryDelay != time.Second || managerConfig.MaxTotalTimeout != 10*time.Second {
		t.Errorf("Unexpected durations: %+v", managerConfig)
	}

	manager := llmprovider.NewManager(providers, managerConfig, logger)
	text, err := manager.Complete(ctx, "classify", "what's my schedule?")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != `{"intent":"check_schedule"}` {
		t.Errorf("Unexpected completion %q", text)
	}
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "groq", Enabled: true, Priority: 1, APIKey: "test-key", Model: "llama-3.3-70b-versatile"},
				},
			},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{Providers: []config.ProviderConfig{}},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "groq", Priority: 1, APIKey: "test-key", Model: "m"},
				},
			},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "groq", Enabled: true, Priority: 1, Model: "m"},
				},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				},
			},
			wantErr: true,
		},
		{
			name: "invalid timeout",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "groq", Enabled: true, Priority: 1, APIKey: "k", Model: "m", Timeout: "soon"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIntegration_SkipsBrokenProviders verifies that one broken provider
// does not prevent the working ones from being used
func TestIntegration_SkipsBrokenProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "", Model: "llama-3.3-70b-versatile"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 1 || providers[0].Name() != "gemini" {
		t.Errorf("Expected only gemini to survive, got %d provider(s)", len(providers))
	}
}

func TestManagerConfig_InvalidDurations(t *testing.T) {
	if _, err := llmprovider.ManagerConfig(config.LLMConfig{RetryDelay: "fast"}, 0); err == nil {
		t.Error("expected error for invalid retry delay")
	}
	if _, err := llmprovider.ManagerConfig(config.LLMConfig{MaxTotalTimeout: "long"}, 0); err == nil {
		t.Error("expected error for invalid max total timeout")
	}
}

// TestIntegration_CompatibleVendorsKeepTheirName verifies that qwen and
// deepseek run over the OpenAI-compatible client but report their own name.
func TestIntegration_CompatibleVendorsKeepTheirName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"qwen-plus","choices":[{"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", BaseURL: ts.URL, Model: "qwen-plus"},
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
		},
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "deepseek" {
		t.Errorf("Unexpected provider names: %s, %s", providers[0].Name(), providers[1].Name())
	}

	resp, err := providers[0].GenerateContent(context.Background(), &llmprovider.Request{
		UserText: "hi",
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.ProviderName != "qwen" {
		t.Errorf("ProviderName = %q, want qwen", resp.ProviderName)
	}
}
