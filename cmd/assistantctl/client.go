package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"booking-assistant/internal/model"
)

const (
	defaultServer  = "http://localhost:8080"
	requestTimeout = 90 * time.Second
	maxErrorBody   = 4 << 10
)

// chatRequest and chatResponse mirror the server's chat contract.
type chatRequest struct {
	Message string                    `json:"message"`
	Context model.ConversationContext `json:"context,omitempty"`
}

type chatResponse struct {
	Reply  string         `json:"reply" yaml:"reply"`
	Intent string         `json:"intent" yaml:"intent"`
	Data   map[string]any `json:"data" yaml:"data"`
}

// apiClient talks to a running assistant server.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

func (c *apiClient) chat(ctx context.Context, message string, conv model.ConversationContext) (chatResponse, error) {
	body, err := json.Marshal(chatRequest{Message: message, Context: conv})
	if err != nil {
		return chatResponse{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/chat", bytes.NewReader(body))
	if err != nil {
		return chatResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chatResponse{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return chatResponse{}, statusError(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return chatResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// scheduleICS downloads the iCalendar export into w.
func (c *apiClient) scheduleICS(ctx context.Context, days int, w io.Writer) error {
	u := c.baseURL + "/api/v1/schedule.ics"
	if days > 0 {
		u += "?" + url.Values{"days": {strconv.Itoa(days)}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	return nil
}

func statusError(resp *http.Response) error {
	var apiErr struct {
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
