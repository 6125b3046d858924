package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/nshtkum/perplexchecker/internal/config"
)

// PerplexityClient handles Perplexity chat-completion API interactions.
// The API key travels with each call: the key belongs to the user, not the
// process.
type PerplexityClient struct {
	config     *config.PerplexityConfig
	httpClient *http.Client
}

// NewPerplexityClient creates a new Perplexity API client
func NewPerplexityClient(cfg *config.PerplexityConfig) *PerplexityClient {
	return &PerplexityClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// remoteErrorBody is the error envelope Perplexity returns on non-2xx
type remoteErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
	Detail string `json:"detail"`
}

// ChatCompletion performs one synchronous chat completion request with the
// given API key. No retries: failures surface to the caller, which may let
// the user retry manually.
func (c *PerplexityClient) ChatCompletion(ctx context.Context, apiKey string, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if apiKey == "" {
		apiKey = c.config.DefaultKey
	}
	if apiKey == "" {
		return nil, newError(KindInvalidArgument, "api key must not be empty", nil)
	}

	if req.Model == "" {
		req.Model = c.config.DefaultModel
	}
	if req.Temperature == 0 && c.config.Temperature > 0 {
		req.Temperature = c.config.Temperature
	}
	if req.MaxTokens == 0 && c.config.MaxTokens > 0 {
		req.MaxTokens = c.config.MaxTokens
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, newError(KindInvalidArgument, "failed to marshal request", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, newError(KindInvalidArgument, "failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, newError(KindNetworkTimeout, "request to chat API timed out", err)
		}
		return nil, newError(KindNetworkError, "failed to reach chat API", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindNetworkError, "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, remoteError(resp.StatusCode, body)
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, newError(KindRemoteError, "failed to unmarshal response", err)
	}
	if len(result.Choices) == 0 {
		return nil, newError(KindRemoteError, "chat API returned no choices", nil)
	}

	return &result, nil
}

// remoteError maps a non-2xx status to the caller-facing error taxonomy,
// keeping the server-provided message where one exists
func remoteError(status int, body []byte) *Error {
	message := serverMessage(body)

	switch status {
	case http.StatusBadRequest:
		return &Error{Kind: KindRemoteError, Status: status, Message: fmt.Sprintf("request rejected by chat API: %s", message)}
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthError, Status: status, Message: "invalid API credential"}
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Status: status, Message: "chat API rate limit exceeded"}
	default:
		return &Error{Kind: KindRemoteError, Status: status, Message: fmt.Sprintf("chat API request failed with status %d: %s", status, message)}
	}
}

// serverMessage pulls a human-readable message out of an error body,
// falling back to the raw body
func serverMessage(body []byte) string {
	var envelope remoteErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error.Message != "" {
			return envelope.Error.Message
		}
		if envelope.Detail != "" {
			return envelope.Detail
		}
	}
	return string(body)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
