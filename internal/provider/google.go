package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleConfig holds credentials for the official Cloud Translation API.
type GoogleConfig struct {
	// CredentialsFile is a path to a service-account JSON file. Empty means
	// ambient credentials (GOOGLE_APPLICATION_CREDENTIALS).
	CredentialsFile string
}

// Google is an alternative fast tier backed by the official Cloud
// Translation API. It is only wired in when credentials are configured; free
// deployments run on the proxy-backed Fast provider instead.
type Google struct {
	cfg GoogleConfig
}

var _ Service = (*Google)(nil)

func NewGoogle(cfg GoogleConfig) *Google {
	return &Google{cfg: cfg}
}

func (g *Google) Name() string { return "google" }

func (g *Google) Invoke(ctx context.Context, req Request) (*Result, error) {
	result := &Result{Provider: g.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	target, err := language.Parse(string(req.TargetLang))
	if err != nil {
		return result, fmt.Errorf("invalid target language: %w", err)
	}

	var opts []option.ClientOption
	if g.cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(g.cfg.CredentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return result, fmt.Errorf("failed to create translate client: %w", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{req.Text}, target, &translate.Options{
		Source: language.English,
	})
	if err != nil {
		return result, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return result, ErrEmptyOutput
	}

	translated := strings.TrimSpace(translations[0].Text)
	if translated == "" {
		return result, ErrEmptyOutput
	}

	result.Text = translated
	return result, nil
}
