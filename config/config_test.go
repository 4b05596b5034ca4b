package config

import (
	"strings"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr string
	}{
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: "no LLM providers configured",
		},
		{
			name: "missing name",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Model: "m", Enabled: true, Priority: 1},
			}},
			wantErr: "name is required",
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1},
			}},
			wantErr: "model is required",
		},
		{
			name: "non positive priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "m", Enabled: true},
			}},
			wantErr: "priority must be positive",
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "m", Enabled: true, Priority: 1},
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
			}},
			wantErr: "duplicate priority",
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "m"},
			}},
			wantErr: "no enabled LLM providers",
		},
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Model: "m", Enabled: true, Priority: 1},
				{Name: "gemini", Model: "m", Enabled: true, Priority: 2},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Errorf("unexpected split result: %v", got)
	}
	if splitList("") != nil {
		t.Errorf("expected nil for empty input")
	}
}

func TestGetIntFromMap(t *testing.T) {
	m := map[string]interface{}{"a": 3, "b": float64(4), "c": "5"}
	if getIntFromMap(m, "a") != 3 || getIntFromMap(m, "b") != 4 || getIntFromMap(m, "c") != 0 {
		t.Errorf("unexpected int extraction")
	}
}
