// Package enrich implements the text-enrichment orchestrators: translation
// and summarization over a tiered provider chain. Every public operation is
// total: it degrades to the best available text instead of returning an
// error.
package enrich

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkrasov/newsglot/internal/detector"
	"github.com/dkrasov/newsglot/internal/provider"
	"github.com/dkrasov/newsglot/internal/retry"
)

// Enricher holds the provider chain. It carries no per-request state and is
// safe for concurrent use.
type Enricher struct {
	fast  provider.Service
	model provider.Service
	det   *detector.Detector
	log   *logrus.Logger

	// Per-call-site retry policies. Each invocation gets a fresh application
	// of these values; they are never mutated after New.
	summaryRetry  retry.Policy
	fallbackRetry retry.Policy
	rescueRetry   retry.Policy
}

func New(fast, model provider.Service, log *logrus.Logger) *Enricher {
	return &Enricher{
		fast:  fast,
		model: model,
		det:   detector.New(),
		log:   log,

		summaryRetry:  retry.Policy{MaxAttempts: 3, InitialDelay: time.Second},
		fallbackRetry: retry.Policy{MaxAttempts: 3, InitialDelay: time.Second},
		rescueRetry:   retry.Policy{MaxAttempts: 2, InitialDelay: 500 * time.Millisecond},
	}
}
