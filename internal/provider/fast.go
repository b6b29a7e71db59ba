package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkrasov/newsglot/internal/proxy"
)

// FastConfig describes the free translation endpoint behind the proxy.
type FastConfig struct {
	// Origin is the upstream host, e.g. "translate.example.net".
	Origin string
	// Path is the translate endpoint path, e.g. "/translate".
	Path string
	// APIKey is optional; free instances run without one.
	APIKey string
}

// Fast is the primary translation backend: a LibreTranslate-shaped endpoint
// reached through the network proxy boundary. Source language is fixed at
// "en" — the pipeline only ever translates English news items.
type Fast struct {
	cfg   FastConfig
	proxy *proxy.Client
	log   *logrus.Logger
}

var _ Service = (*Fast)(nil)

func NewFast(cfg FastConfig, p *proxy.Client, log *logrus.Logger) *Fast {
	return &Fast{cfg: cfg, proxy: p, log: log}
}

func (f *Fast) Name() string { return "fast" }

type fastRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type fastResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error,omitempty"`
}

func (f *Fast) Invoke(ctx context.Context, req Request) (*Result, error) {
	result := &Result{Provider: f.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	body, err := json.Marshal(fastRequest{
		Q:      req.Text,
		Source: "en",
		Target: string(req.TargetLang),
		Format: "text",
		APIKey: f.cfg.APIKey,
	})
	if err != nil {
		return result, fmt.Errorf("failed to marshal translate request: %w", err)
	}

	resp, err := f.proxy.Forward(ctx, proxy.Request{
		Protocol: "https",
		Origin:   f.cfg.Origin,
		Path:     f.cfg.Path,
		Method:   "POST",
		Headers:  map[string]string{"Content-Type": "application/json"},
		Body:     string(body),
	})
	if err != nil {
		return result, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, fmt.Errorf("fast provider returned status %d", resp.StatusCode)
	}

	var parsed fastResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return result, fmt.Errorf("failed to decode translate response: %w", err)
	}
	if parsed.Error != "" {
		return result, fmt.Errorf("fast provider error: %s", parsed.Error)
	}

	translated := strings.TrimSpace(parsed.TranslatedText)
	if translated == "" {
		return result, ErrEmptyOutput
	}

	result.Text = translated
	f.log.WithFields(logrus.Fields{
		"provider": f.Name(),
		"target":   req.TargetLang,
		"latency":  result.Latency,
	}).Debug("translation returned")

	return result, nil
}
