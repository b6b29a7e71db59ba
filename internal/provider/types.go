// Package provider adapts the heterogeneous enrichment backends (a free
// translation endpoint, an OpenAI-compatible chat-completion endpoint and an
// optional Cloud Translation tier) to one call shape.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/dkrasov/newsglot/internal/lang"
)

// ErrEmptyOutput marks a call that technically succeeded but returned blank
// or absent content. Callers treat it like any other provider failure.
var ErrEmptyOutput = errors.New("provider returned empty output")

// Request is the uniform provider input. SystemPrompt is only meaningful for
// the model provider; translation-only backends ignore it.
type Request struct {
	Text         string
	TargetLang   lang.Tag
	SystemPrompt string
}

type Result struct {
	Provider string
	Text     string
	Latency  time.Duration
}

// Service is the uniform call interface over the backends.
type Service interface {
	Name() string
	Invoke(ctx context.Context, req Request) (*Result, error)
}
