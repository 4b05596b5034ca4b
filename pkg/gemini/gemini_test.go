package gemini_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booking-assistant/pkg/gemini"
)

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(context.Background(), gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := gemini.New(context.Background(), gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [{"text": "{\"intent\": "}, {"text": "\"check_schedule\"}"}]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 4, "totalTokenCount": 14}
		}`))
	}))
	defer ts.Close()

	c, err := gemini.New(context.Background(), gemini.Config{
		APIKey:     "test-api-key",
		Model:      "gemini-test",
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: "classify",
		Prompt:            "what's my schedule?",
		Temperature:       0.1,
		JSONMode:          true,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != `{"intent": "check_schedule"}` {
		t.Errorf("unexpected text %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 14 {
		t.Errorf("unexpected usage %+v", resp.Usage)
	}
}

func TestGenerateContent_Empty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	c, _ := gemini.New(context.Background(), gemini.Config{APIKey: "k", BaseURL: ts.URL, HTTPClient: ts.Client()})
	_, err := c.GenerateContent(context.Background(), &gemini.Request{Prompt: "hi"})
	if !errors.Is(err, gemini.ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateContent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"code": 500, "message": "boom", "status": "INTERNAL"}}`))
	}))
	defer ts.Close()

	c, _ := gemini.New(context.Background(), gemini.Config{APIKey: "k", BaseURL: ts.URL, HTTPClient: ts.Client()})
	if _, err := c.GenerateContent(context.Background(), &gemini.Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error")
	}
}
