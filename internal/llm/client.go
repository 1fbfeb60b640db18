// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps an OpenAI-compatible chat-completion API behind a
// small Backend interface so the rest of the pipeline, and its tests,
// never touch HTTP directly.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/anchortext/anchortext/pkg/types"
)

// ErrEmptyResponse reports a completion with no content.
var ErrEmptyResponse = errors.New("model returned empty response")

// Backend abstracts the text-generation API so tests can supply a mock.
type Backend interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// defaultAPIBase is the endpoint used when the config leaves APIBase
// empty. Package-level var for test substitution.
var defaultAPIBase = "https://api.openai.com/v1"

// ChatBackend calls an OpenAI-compatible /chat/completions endpoint.
type ChatBackend struct {
	Config types.AIConfig
	Client *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends one system+user exchange and returns the assistant text.
func (b *ChatBackend) Complete(ctx context.Context, system, user string) (string, error) {
	base := b.Config.APIBase
	if base == "" {
		base = defaultAPIBase
	}
	url := strings.TrimSuffix(base, "/") + "/chat/completions"

	maxTokens := b.Config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	reqBody := chatRequest{
		Model:       b.Config.Model,
		Temperature: b.Config.Temperature,
		MaxTokens:   maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.Config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.Config.APIKey)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling completion API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding completion response: %w", err)
	}

	if len(cResp.Choices) == 0 || cResp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return cResp.Choices[0].Message.Content, nil
}

// retryDelay is the base backoff between attempts. Tests override this
// to avoid real sleeps.
var retryDelay = 2 * time.Second

// Client drives protocol transformations through a Backend with bounded
// retry and optional output validation.
type Client struct {
	backend    Backend
	maxRetries int
}

// NewClient returns a Client backed by the HTTP chat backend described
// by cfg.
func NewClient(cfg types.AIConfig) *Client {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{
		backend:    &ChatBackend{Config: cfg},
		maxRetries: maxRetries,
	}
}

// NewClientWithBackend returns a Client over an explicit backend. Used
// by tests and by callers that share one backend across stages.
func NewClientWithBackend(backend Backend, maxRetries int) *Client {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Client{backend: backend, maxRetries: maxRetries}
}

// Backend exposes the underlying backend for stages that build their
// own prompts (lexical analysis, trap generation, primer definitions).
func (c *Client) Backend() Backend { return c.backend }

// TransformOptions selects the system prompt for one chunk.
type TransformOptions struct {
	// Level is the scaffolding level, 1 (max) to 5 (min). Values are
	// clamped.
	Level int
	// Continuation marks a chunk that is not the first of its document.
	Continuation bool
	// Final marks the last chunk.
	Final bool
	// Exclusion is the mastered-words prompt addendum, or "".
	Exclusion string
}

// Transform rewrites one chunk of text under the protocol rules,
// retrying transient failures with exponential backoff.
func (c *Client) Transform(ctx context.Context, text string, opts TransformOptions) (string, error) {
	system := SystemPrompt(types.ClampLevel(opts.Level), opts.Continuation, opts.Final, opts.Exclusion)
	return c.complete(ctx, system, text)
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	result, err := retry.DoWithData(
		func() (string, error) {
			return c.backend.Complete(ctx, system, user)
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(retryDelay),
		retry.MaxDelay(10*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("after %d attempts: %w", c.maxRetries, err)
	}
	return result, nil
}

// TransformValidated transforms a chunk and checks the output for the
// markers the level requires. On a validation miss it retries once with
// a reminder appended to the input; if the output still fails, the last
// result is returned anyway so a stubborn model degrades the formatting
// rather than the whole run.
func (c *Client) TransformValidated(ctx context.Context, text string, opts TransformOptions) (string, error) {
	level := types.ClampLevel(opts.Level)
	expect := ExpectationsForLevel(level)

	result, err := c.Transform(ctx, text, opts)
	if err != nil {
		return "", err
	}

	ok, issues := ValidateTransformation(result, expect)
	if ok {
		return result, nil
	}

	reminder := fmt.Sprintf(
		"\n\nIMPORTANT: Your previous response was missing: %s. Please ensure ALL rules are applied.",
		strings.Join(issues, ", "))
	retried, err := c.Transform(ctx, text+reminder, opts)
	if err != nil {
		return result, nil
	}
	return retried, nil
}
