package enrich

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dkrasov/newsglot/internal/provider"
	"github.com/dkrasov/newsglot/internal/retry"
)

type mockService struct {
	nameVal    string
	invokeFunc func(ctx context.Context, req provider.Request) (*provider.Result, error)
	callCount  atomic.Int32
}

func (m *mockService) Name() string {
	if m.nameVal == "" {
		return "mock"
	}
	return m.nameVal
}

func (m *mockService) Invoke(ctx context.Context, req provider.Request) (*provider.Result, error) {
	m.callCount.Add(1)
	if m.invokeFunc != nil {
		return m.invokeFunc(ctx, req)
	}
	return &provider.Result{Provider: m.Name(), Text: "mock result"}, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestEnricher shrinks the retry delays so exhaustion paths run in
// milliseconds.
func newTestEnricher(fast, model provider.Service) *Enricher {
	e := New(fast, model, testLogger())
	e.summaryRetry = retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond}
	e.fallbackRetry = retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond}
	e.rescueRetry = retry.Policy{MaxAttempts: 2, InitialDelay: time.Millisecond}
	return e
}

func failingService(name string) *mockService {
	return &mockService{
		nameVal: name,
		invokeFunc: func(ctx context.Context, req provider.Request) (*provider.Result, error) {
			return nil, context.DeadlineExceeded
		},
	}
}

func fixedService(name, text string) *mockService {
	return &mockService{
		nameVal: name,
		invokeFunc: func(ctx context.Context, req provider.Request) (*provider.Result, error) {
			return &provider.Result{Provider: name, Text: text}, nil
		},
	}
}
