package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dkrasov/newsglot/internal/lang"
)

func TestChat_Invoke_Success(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		io.WriteString(w, `{"choices": [{"message": {"content": "Біткоїн зріс до нового максимуму"}}]}`)
	}))
	defer server.Close()

	svc := NewChat(ChatConfig{BaseURL: server.URL, Model: "gpt-4o-mini", APIKey: "test-key"}, testLogger())

	result, err := svc.Invoke(context.Background(), Request{
		Text:         "Bitcoin hits new high",
		TargetLang:   lang.Ukrainian,
		SystemPrompt: "translate to Ukrainian",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "Біткоїн зріс до нового максимуму" {
		t.Errorf("unexpected text %q", result.Text)
	}

	if captured.Model != "gpt-4o-mini" {
		t.Errorf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "translate to Ukrainian" {
		t.Errorf("unexpected system message %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "Bitcoin hits new high" {
		t.Errorf("unexpected user message %+v", captured.Messages[1])
	}
}

func TestChat_Invoke_CleansArtifacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices": [{"message": {"content": "\"Біткоїн зріс\""}}]}`)
	}))
	defer server.Close()

	svc := NewChat(ChatConfig{BaseURL: server.URL, Model: "m"}, testLogger())

	result, err := svc.Invoke(context.Background(), Request{Text: "x", TargetLang: lang.Ukrainian})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Text != "Біткоїн зріс" {
		t.Errorf("expected quote wrapping removed, got %q", result.Text)
	}
}

func TestChat_Invoke_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices": []}`)
	}))
	defer server.Close()

	svc := NewChat(ChatConfig{BaseURL: server.URL, Model: "m"}, testLogger())

	_, err := svc.Invoke(context.Background(), Request{Text: "x", TargetLang: lang.Ukrainian})
	if !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestChat_Invoke_BlankContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"choices": [{"message": {"content": "  "}}]}`)
	}))
	defer server.Close()

	svc := NewChat(ChatConfig{BaseURL: server.URL, Model: "m"}, testLogger())

	_, err := svc.Invoke(context.Background(), Request{Text: "x", TargetLang: lang.Ukrainian})
	if !errors.Is(err, ErrEmptyOutput) {
		t.Errorf("expected ErrEmptyOutput, got %v", err)
	}
}

func TestChat_Invoke_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "overloaded"}`)
	}))
	defer server.Close()

	svc := NewChat(ChatConfig{BaseURL: server.URL, Model: "m"}, testLogger())

	if _, err := svc.Invoke(context.Background(), Request{Text: "x", TargetLang: lang.Ukrainian}); err == nil {
		t.Error("expected error for 500 status")
	}
}
