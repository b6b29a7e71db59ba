package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkrasov/newsglot/internal/postprocess"
)

// ChatConfig describes the OpenAI-compatible chat-completion backend used as
// the model provider (summarization, translation fallback).
type ChatConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type Chat struct {
	cfg    ChatConfig
	client *http.Client
	log    *logrus.Logger
}

var _ Service = (*Chat)(nil)

func NewChat(cfg ChatConfig, log *logrus.Logger) *Chat {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1024
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Chat{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (c *Chat) Name() string { return "chat" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Chat) Invoke(ctx context.Context, req Request) (*Result, error) {
	result := &Result{Provider: c.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.Text},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return result, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/chat/completions", strings.TrimRight(c.cfg.BaseURL, "/")), bytes.NewReader(body))
	if err != nil {
		return result, fmt.Errorf("failed to create chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return result, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return result, fmt.Errorf("chat provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return result, fmt.Errorf("failed to decode chat response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return result, ErrEmptyOutput
	}
	content := postprocess.Clean(parsed.Choices[0].Message.Content)
	if content == "" {
		return result, ErrEmptyOutput
	}

	result.Text = content
	c.log.WithFields(logrus.Fields{
		"provider": c.Name(),
		"model":    c.cfg.Model,
		"latency":  result.Latency,
	}).Debug("completion returned")

	return result, nil
}
